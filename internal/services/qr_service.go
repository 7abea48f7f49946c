package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	// Register decoders for the accepted upload formats
	_ "image/gif"
	_ "image/jpeg"

	"back_qr/internal/apperrors"
	"back_qr/internal/models"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	qrcode "github.com/skip2/go-qrcode"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// boxSize is the rendered pixel width of one QR module before resampling
const boxSize = 10

// QRService wraps the external decode and encode libraries and
// normalizes their outputs and errors. Everything else in the system
// stays free of image processing.
type QRService struct{}

// NewQRService creates a new QR service
func NewQRService() *QRService {
	return &QRService{}
}

// DecodeImage decodes all QR symbols found in a raster image. An image
// without any symbol is an error, never an empty success list, so callers
// can tell "nothing in picture" from "picture unreadable".
func (qs *QRService) DecodeImage(imageData []byte) ([]models.ScanResult, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, apperrors.Decode("Could not decode image data")
	}

	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, apperrors.Decode("Could not decode image data")
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	decoded, err := zxingqr.NewQRCodeMultiReader().DecodeMultiple(bitmap, hints)
	if err != nil || len(decoded) == 0 {
		return nil, apperrors.Decode("No QR codes found in image")
	}

	results := make([]models.ScanResult, 0, len(decoded))
	for _, symbol := range decoded {
		results = append(results, models.ScanResult{
			Data:     symbol.GetText(),
			Type:     symbol.GetBarcodeFormat().String(),
			Position: boundingBox(symbol.GetResultPoints()),
		})
	}

	return results, nil
}

// DecodeBase64 decodes QR symbols from a base64 payload, accepting both
// bare base64 and data URLs ("data:image/png;base64,...")
func (qs *QRService) DecodeBase64(data string) ([]models.ScanResult, error) {
	if idx := strings.Index(data, ","); idx >= 0 {
		data = data[idx+1:]
	}

	// Camera payloads sometimes arrive line-wrapped; whitespace is not
	// part of the encoding
	data = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, data)

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, apperrors.Decode("Could not decode image data")
	}

	return qs.DecodeImage(imageData)
}

// GenerateQRCode renders text as a QR symbol, scales it to the requested
// size and returns it as a PNG data URL. An unrecognized error-correction
// level falls back to M rather than failing.
func (qs *QRService) GenerateQRCode(text string, width, height, border int, errorCorrection string) (*models.GeneratedQR, error) {
	if border < 0 {
		return nil, apperrors.Validation("Border must be a non-negative value")
	}

	code, err := qrcode.New(text, recoveryLevel(errorCorrection))
	if err != nil {
		return nil, apperrors.Encode("Error generating QR code", err)
	}

	// Render at a fixed module size without the library border, then add
	// the requested quiet zone ourselves so its width is configurable.
	code.DisableBorder = true
	symbol := code.Image(-boxSize)

	pad := border * boxSize

	canvas := image.NewRGBA(image.Rect(0, 0,
		symbol.Bounds().Dx()+2*pad, symbol.Bounds().Dy()+2*pad))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Draw(canvas, symbol.Bounds().Add(image.Pt(pad, pad)), symbol, symbol.Bounds().Min, xdraw.Src)

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, apperrors.Encode("Error generating QR code", err)
	}

	return &models.GeneratedQR{
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Size:  [2]int{width, height},
		Data:  text,
	}, nil
}

// recoveryLevel maps the QR standard level names onto the encoder's
// constants, defaulting to M for anything unrecognized
func recoveryLevel(errorCorrection string) qrcode.RecoveryLevel {
	switch strings.ToUpper(errorCorrection) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// boundingBox computes the axis-aligned box around a symbol's finder points
func boundingBox(points []gozxing.ResultPoint) models.Position {
	if len(points) == 0 {
		return models.Position{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, point := range points {
		minX = math.Min(minX, point.GetX())
		minY = math.Min(minY, point.GetY())
		maxX = math.Max(maxX, point.GetX())
		maxY = math.Max(maxY, point.GetY())
	}

	return models.Position{
		X:      int(minX),
		Y:      int(minY),
		Width:  int(maxX - minX),
		Height: int(maxY - minY),
	}
}
