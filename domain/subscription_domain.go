package domain

import (
	"errors"
)

var (
	MessageSuccessSubscribe = "subscription transaction created"
	MessageFailedSubscribe  = "failed to create subscription transaction"

	ErrUnknownPlan         = errors.New("unknown subscription plan")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type (
	SubscribeRequest struct {
		Plan string `json:"plan" validate:"required,oneof=pro_monthly pro_yearly"`
	}

	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		SnapToken   string `json:"snap_token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
