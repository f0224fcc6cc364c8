package store

import "errors"

// Non-fatal rejections surfaced to callers as informational messages.
var (
	ErrCartEmpty        = errors.New("sepet boş")
	ErrMenuItemNotFound = errors.New("menü ürünü bulunamadı")
	ErrOrderNotFound    = errors.New("sipariş bulunamadı")
	ErrOrderNotPending  = errors.New("hazırlanmaya başlayan siparişler iptal edilemez")
	ErrUnknownStatus    = errors.New("geçersiz sipariş durumu")
	ErrBackwardStatus   = errors.New("sipariş durumu geri alınamaz")
	ErrUnknownPayment   = errors.New("geçersiz ödeme durumu")
	ErrCallNotFound     = errors.New("çağrı bulunamadı")
	ErrUnknownCallType  = errors.New("geçersiz çağrı tipi")
)
