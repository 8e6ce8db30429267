package service

// QRCodeService renders a QR code PNG for a URL, used for banner click-URL
// previews on the banners screen.
type QRCodeService interface {
	EncodePNG(content string) ([]byte, error)
}
