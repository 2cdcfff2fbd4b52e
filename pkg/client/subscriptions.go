package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"lounge_backend/internal/models"
	"lounge_backend/internal/services/dto"
)

type SubscriptionClient struct {
	http *HttpClient
}

func (c *SubscriptionClient) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	resp, err := c.http.POST(ctx, "/api/v1/subscriptions", req)
	if err != nil {
		return nil, err
	}
	return decodeSubscription(resp, http.StatusCreated)
}

func (c *SubscriptionClient) List(ctx context.Context) ([]models.Subscription, error) {
	resp, err := c.http.GET(ctx, "/api/v1/subscriptions")
	if err != nil {
		return nil, err
	}
	return decodeSubscriptions(resp)
}

func (c *SubscriptionClient) ListByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	resp, err := c.http.GET(ctx, "/api/v1/subscriptions/user/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}
	return decodeSubscriptions(resp)
}

func (c *SubscriptionClient) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	resp, err := c.http.GET(ctx, "/api/v1/subscriptions/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return decodeSubscription(resp, http.StatusOK)
}

func (c *SubscriptionClient) Update(ctx context.Context, id string, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	resp, err := c.http.PATCH(ctx, "/api/v1/subscriptions/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	return decodeSubscription(resp, http.StatusOK)
}

func (c *SubscriptionClient) Delete(ctx context.Context, id string) error {
	resp, err := c.http.DELETE(ctx, "/api/v1/subscriptions/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete subscription failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func (c *SubscriptionClient) Cancel(ctx context.Context, id string) (*models.Subscription, error) {
	resp, err := c.http.PATCH(ctx, "/api/v1/subscriptions/"+url.PathEscape(id)+"/cancel", nil)
	if err != nil {
		return nil, err
	}
	return decodeSubscription(resp, http.StatusOK)
}

// CheckStatus - действует ли подписка и сколько дней осталось
func (c *SubscriptionClient) CheckStatus(ctx context.Context, id string) (*dto.SubscriptionStatusResponse, error) {
	resp, err := c.http.GET(ctx, "/api/v1/subscriptions/"+url.PathEscape(id)+"/status")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subscription status failed: %s", GetErrorMessage(resp))
	}

	var status dto.SubscriptionStatusResponse
	if err := resp.DecodeJSON(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CreateTransaction пишет платеж в журнал и продлевает подписку
func (c *SubscriptionClient) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*models.SubscriptionTransaction, error) {
	resp, err := c.http.POST(ctx, "/api/v1/subscription-transactions", req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create transaction failed: %s", GetErrorMessage(resp))
	}

	var tx models.SubscriptionTransaction
	if err := resp.DecodeJSON(&tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *SubscriptionClient) ListTransactions(ctx context.Context) ([]models.SubscriptionTransaction, error) {
	resp, err := c.http.GET(ctx, "/api/v1/subscription-transactions")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list transactions failed: %s", GetErrorMessage(resp))
	}

	var txs []models.SubscriptionTransaction
	if err := resp.DecodeJSON(&txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func decodeSubscription(resp *Response, wantStatus int) (*models.Subscription, error) {
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("subscription request failed: %s", GetErrorMessage(resp))
	}

	var subscription models.Subscription
	if err := resp.DecodeJSON(&subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

func decodeSubscriptions(resp *Response) ([]models.Subscription, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subscription request failed: %s", GetErrorMessage(resp))
	}

	var subscriptions []models.Subscription
	if err := resp.DecodeJSON(&subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}
