package service

// QRCodeService defines the interface for shop share QR codes. The encoded
// payload carries the shop id so a client can jump straight to the shop's
// price listing.
type QRCodeService interface {
	// GenerateShopQR generates a PNG QR code for a shop.
	GenerateShopQR(shopID string) ([]byte, error)

	// ParseShopQR parses QR payload data and returns the shop id.
	ParseShopQR(qrData string) (string, error)
}
