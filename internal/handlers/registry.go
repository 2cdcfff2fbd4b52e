package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	LoungeHandler       *LoungeHandler
	BookingHandler      *BookingHandler
	SubscriptionHandler *SubscriptionHandler
	UploadHandler       *UploadHandler
}
