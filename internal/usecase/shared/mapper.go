package shared

import (
	"borrowing-service/internal/domain/borrowing"
	"borrowing-service/internal/pkg/errs"
	"borrowing-service/internal/pkg/fieldcrypt"
)

// BorrowingMapper converts between the domain entity and its stored record,
// encrypting the shipping address on the way in and decrypting it on the way out.
type BorrowingMapper struct {
	cipher fieldcrypt.Cipher
}

func NewBorrowingMapper(cipher fieldcrypt.Cipher) *BorrowingMapper {
	return &BorrowingMapper{cipher: cipher}
}

func (m *BorrowingMapper) ToRecord(b *borrowing.Borrowing) (BorrowingRecord, error) {
	enc, err := m.cipher.Encrypt(b.ShippingAddress().String())
	if err != nil {
		return BorrowingRecord{}, errs.Mark(errs.Wrap(err, "encrypt shipping address"), errs.ErrCipherFailed)
	}
	return BorrowingRecord{
		ID:                       b.ID(),
		UserID:                   b.UserID(),
		BookUnitID:               b.BookUnitID(),
		EncryptedShippingAddress: enc,
		StartDate:                b.StartDate(),
		EndDate:                  b.EndDate(),
		Active:                   b.IsActive(),
		CreatedAt:                b.CreatedAt(),
	}, nil
}

func (m *BorrowingMapper) ToDomain(rec BorrowingRecord) (*borrowing.Borrowing, error) {
	addr, err := m.cipher.Decrypt(rec.EncryptedShippingAddress)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "decrypt shipping address of borrowing %d", rec.ID), errs.ErrCipherFailed)
	}
	return borrowing.ReconstructBorrowing(
		rec.ID, rec.UserID, rec.BookUnitID,
		addr,
		rec.StartDate, rec.EndDate,
		rec.Active,
		rec.CreatedAt,
	), nil
}

func (m *BorrowingMapper) ToDomainList(recs []BorrowingRecord) ([]*borrowing.Borrowing, error) {
	out := make([]*borrowing.Borrowing, 0, len(recs))
	for _, rec := range recs {
		b, err := m.ToDomain(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
