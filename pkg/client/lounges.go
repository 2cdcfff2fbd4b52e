package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"lounge_backend/internal/models"
	"lounge_backend/internal/services/dto"
)

type LoungeClient struct {
	http *HttpClient
}

// List возвращает каталог залов с опциональными фильтрами
func (c *LoungeClient) List(ctx context.Context, query *dto.ListLoungesQuery) ([]models.Lounge, error) {
	path := "/api/v1/lounges"
	if query != nil {
		q := url.Values{}
		if query.Query != "" {
			q.Set("query", query.Query)
		}
		if query.Airport != "" {
			q.Set("airport", query.Airport)
		}
		if query.Country != "" {
			q.Set("country", query.Country)
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	resp, err := c.http.GET(ctx, path)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list lounges failed: %s", GetErrorMessage(resp))
	}

	var lounges []models.Lounge
	if err := resp.DecodeJSON(&lounges); err != nil {
		return nil, err
	}
	return lounges, nil
}

func (c *LoungeClient) GetByID(ctx context.Context, id string) (*models.Lounge, error) {
	resp, err := c.http.GET(ctx, "/api/v1/lounges/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return decodeLounge(resp, http.StatusOK)
}

func (c *LoungeClient) Create(ctx context.Context, req *dto.CreateLoungeRequest) (*models.Lounge, error) {
	resp, err := c.http.POST(ctx, "/api/v1/lounges", req)
	if err != nil {
		return nil, err
	}
	return decodeLounge(resp, http.StatusCreated)
}

func (c *LoungeClient) Update(ctx context.Context, id string, req *dto.UpdateLoungeRequest) (*models.Lounge, error) {
	resp, err := c.http.PATCH(ctx, "/api/v1/lounges/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	return decodeLounge(resp, http.StatusOK)
}

func (c *LoungeClient) Delete(ctx context.Context, id string) error {
	resp, err := c.http.DELETE(ctx, "/api/v1/lounges/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete lounge failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func (c *LoungeClient) Analytics(ctx context.Context) (*dto.LoungeAnalytics, error) {
	resp, err := c.http.GET(ctx, "/api/v1/lounges/analytics")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lounge analytics failed: %s", GetErrorMessage(resp))
	}

	var analytics dto.LoungeAnalytics
	if err := resp.DecodeJSON(&analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *LoungeClient) Stats(ctx context.Context, id string) (*dto.LoungeStats, error) {
	resp, err := c.http.GET(ctx, "/api/v1/lounges/"+url.PathEscape(id)+"/stats")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lounge stats failed: %s", GetErrorMessage(resp))
	}

	var stats dto.LoungeStats
	if err := resp.DecodeJSON(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func decodeLounge(resp *Response, wantStatus int) (*models.Lounge, error) {
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("lounge request failed: %s", GetErrorMessage(resp))
	}

	var lounge models.Lounge
	if err := resp.DecodeJSON(&lounge); err != nil {
		return nil, err
	}
	return &lounge, nil
}
