package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fridgesmart/domain"
	"fridgesmart/entities"
	"fridgesmart/internal/logger"
	"fridgesmart/internal/utils"
	"fridgesmart/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

const (
	TransactionStatusPending = "Pending"
	TransactionStatusSettled = "Settled"
	TransactionStatusFailed  = "Failed"

	PlanProMonthly = "pro_monthly"
	PlanProYearly  = "pro_yearly"
)

// plan prices in IDR, the currency Midtrans settles in.
var planPrices = map[string]int64{
	PlanProMonthly: 49000,
	PlanProYearly:  490000,
}

var planDurations = map[string]func(time.Time) time.Time{
	PlanProMonthly: func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
	PlanProYearly:  func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
}

type (
	// SnapGateway wraps the Midtrans Snap API so tests can stub payments.
	SnapGateway interface {
		CreateTransaction(req *snap.Request) (*snap.Response, error)
	}

	SubscriptionService interface {
		Subscribe(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		snapGateway            SnapGateway
	}

	snapClient struct {
		client snap.Client
	}
)

func NewSnapGateway() SnapGateway {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return &snapClient{client: client}
}

func (c *snapClient) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	resp, err := c.client.CreateTransaction(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	userRepository user.UserRepository,
	snapGateway SnapGateway,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		snapGateway:            snapGateway,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error) {
	price, ok := planPrices[req.Plan]
	if !ok {
		return domain.SubscribeResponse{}, domain.ErrUnknownPlan
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscribeResponse{}, err
	}

	orderID := fmt.Sprintf("FRIDGESMART-%s-%d", req.Plan, time.Now().UnixNano())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: price,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: account.Name,
			Email: account.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Plan,
				Name:  "FridgeSmart Pro (" + req.Plan + ")",
				Price: price,
				Qty:   1,
			},
		},
	}

	snapResp, err := s.snapGateway.CreateTransaction(snapReq)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}

	tx := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		OrderID:     orderID,
		GrossAmount: price,
		Plan:        req.Plan,
		Status:      TransactionStatusPending,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}
	if err := s.subscriptionRepository.CreateTransaction(ctx, tx); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification applies a Midtrans webhook callback. Settlement flips
// the user to Pro for the plan's duration; failure states mark the
// transaction and change nothing else.
func (s *subscriptionService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	tx, err := s.subscriptionRepository.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus != "accept" {
			return nil
		}
		return s.settle(ctx, tx)
	case "settlement":
		return s.settle(ctx, tx)
	case "deny", "cancel", "expire", "failure":
		tx.Status = TransactionStatusFailed
		return s.subscriptionRepository.UpdateTransaction(ctx, tx)
	default:
		return nil
	}
}

func (s *subscriptionService) settle(ctx context.Context, tx *entities.Transaction) error {
	if tx.Status == TransactionStatusSettled {
		// Midtrans retries notifications; settling twice must not extend
		// the subscription again.
		return nil
	}

	tx.Status = TransactionStatusSettled
	if err := s.subscriptionRepository.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	account, err := s.userRepository.GetUserByID(ctx, tx.UserID.String())
	if err != nil {
		return err
	}

	extend, ok := planDurations[tx.Plan]
	if !ok {
		logger.Warn("settled transaction has unknown plan", "order_id", tx.OrderID, "plan", tx.Plan)
		return nil
	}

	base := time.Now()
	if account.IsPro && account.ProUntil != nil && account.ProUntil.After(base) {
		base = *account.ProUntil
	}
	until := extend(base)

	account.IsPro = true
	account.ProUntil = &until
	return s.userRepository.UpdateUser(ctx, account)
}
