// @title           Lounge Africa API
// @version         1.0
// @description     API бронирования VIP-залов в аэропортах.
// @contact.name    Lounge Africa
// @contact.email   support@lounge-africa.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:6610
// @BasePath        /

package main

import "lounge_backend/internal/app"

func main() {
	app.Run()
}
