package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет HTML-письмо
	Send(to, subject, htmlBody string) error

	// SendWelcome отправляет приветственное письмо новому пользователю
	SendWelcome(to, firstName, lastName string) error
}

// NoopProvider - заглушка: ничего не отправляет.
// Используется в тестах и когда SMTP не сконфигурирован.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error { return nil }

func (NoopProvider) SendWelcome(to, firstName, lastName string) error { return nil }
