package bootstrap

import (
	"log/slog"

	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/pkg/fieldcrypt"

	"go.uber.org/fx"
)

// shippingAddressInfo binds the derived key to the borrowings.shipping_address column.
const shippingAddressInfo = "borrowings.shipping_address"

var CryptoModule = fx.Module("crypto",
	fx.Provide(
		NewFieldCipher,
	),
)

func NewFieldCipher(cfg config.Config, logger *slog.Logger) (fieldcrypt.Cipher, error) {
	if cfg.Crypto.FieldKey == "" {
		logger.Warn("FIELD_ENCRYPTION_KEY is not set, shipping addresses are stored in clear text")
	}
	return fieldcrypt.New(cfg.Crypto.FieldKey, shippingAddressInfo)
}
