package docs

import "github.com/swaggo/swag"

// @title           TaskCherry API
// @version         1.0
// @description     API for TaskCherry boards, columns, cards, dashboard widgets, reports and user settings

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration and login

// @tag.name Boards
// @tag.description Board management and tab ordering

// @tag.name Columns
// @tag.description Column management, sorting and ordering

// @tag.name Cards
// @tag.description Card management and drag-and-drop moves

// @tag.name Widgets
// @tag.description Dashboard widgets and computed values

// @tag.name Reports
// @tag.description Point-in-time board snapshots

// @tag.name Settings
// @tag.description Per-user preferences

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
