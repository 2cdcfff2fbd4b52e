package client

// Client объединяет типизированные суб-клиенты API поверх общей
// HTTP-сессии. Логин через AuthClient кладет токен в сессию,
// дальше он используется всеми суб-клиентами.
type Client struct {
	http *HttpClient

	Auth          *AuthClient
	Users         *UserClient
	Lounges       *LoungeClient
	Bookings      *BookingClient
	Subscriptions *SubscriptionClient
}

func New(baseURL string) *Client {
	httpClient := NewHttpClient(baseURL)
	return &Client{
		http:          httpClient,
		Auth:          &AuthClient{http: httpClient},
		Users:         &UserClient{http: httpClient},
		Lounges:       &LoungeClient{http: httpClient},
		Bookings:      &BookingClient{http: httpClient},
		Subscriptions: &SubscriptionClient{http: httpClient},
	}
}

// SetToken выставляет bearer-токен вручную (например, из сохраненной сессии)
func (c *Client) SetToken(token string) {
	c.http.SetToken(token)
}

// Logout сбрасывает сессию клиента
func (c *Client) Logout() {
	c.http.ClearToken()
}
