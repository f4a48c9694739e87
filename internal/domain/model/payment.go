package model

import "time"

// PixCharge is an instant-payment charge issued for an order awaiting payment.
type PixCharge struct {
	TxID        string
	QRCodeText  string
	QRCodeImage string
	ExpiresAt   time.Time
}
