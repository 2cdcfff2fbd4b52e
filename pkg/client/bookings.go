package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"lounge_backend/internal/models"
	"lounge_backend/internal/services/dto"
)

type BookingClient struct {
	http *HttpClient
}

func (c *BookingClient) Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	resp, err := c.http.POST(ctx, "/api/v1/bookings", req)
	if err != nil {
		return nil, err
	}
	return decodeBooking(resp, http.StatusCreated)
}

func (c *BookingClient) List(ctx context.Context, query *dto.ListBookingsQuery) ([]models.Booking, error) {
	path := "/api/v1/bookings"
	if query != nil {
		q := url.Values{}
		if query.UserID != "" {
			q.Set("userId", query.UserID)
		}
		if query.LoungeID != "" {
			q.Set("loungeId", query.LoungeID)
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	resp, err := c.http.GET(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeBookings(resp)
}

// ListOwn - брони текущего пользователя
func (c *BookingClient) ListOwn(ctx context.Context) ([]models.Booking, error) {
	resp, err := c.http.GET(ctx, "/api/v1/bookings/user")
	if err != nil {
		return nil, err
	}
	return decodeBookings(resp)
}

func (c *BookingClient) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	resp, err := c.http.GET(ctx, "/api/v1/bookings/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return decodeBooking(resp, http.StatusOK)
}

func (c *BookingClient) Update(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	resp, err := c.http.PATCH(ctx, "/api/v1/bookings/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	return decodeBooking(resp, http.StatusOK)
}

func (c *BookingClient) Delete(ctx context.Context, id string) error {
	resp, err := c.http.DELETE(ctx, "/api/v1/bookings/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete booking failed: %s", GetErrorMessage(resp))
	}
	return nil
}

func (c *BookingClient) Confirm(ctx context.Context, id string) (*models.Booking, error) {
	return c.transition(ctx, id, "confirm")
}

func (c *BookingClient) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	return c.transition(ctx, id, "cancel")
}

func (c *BookingClient) Complete(ctx context.Context, id string) (*models.Booking, error) {
	return c.transition(ctx, id, "complete")
}

func (c *BookingClient) transition(ctx context.Context, id, action string) (*models.Booking, error) {
	resp, err := c.http.PATCH(ctx, "/api/v1/bookings/"+url.PathEscape(id)+"/"+action, nil)
	if err != nil {
		return nil, err
	}
	return decodeBooking(resp, http.StatusOK)
}

func decodeBooking(resp *Response, wantStatus int) (*models.Booking, error) {
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("booking request failed: %s", GetErrorMessage(resp))
	}

	var booking models.Booking
	if err := resp.DecodeJSON(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func decodeBookings(resp *Response) ([]models.Booking, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking request failed: %s", GetErrorMessage(resp))
	}

	var bookings []models.Booking
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
