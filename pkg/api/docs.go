// Package api provides the status API of the relay.
// @title ChainRelay API
// @version 1.0
// @description Status of contract subscriptions and failed store operations
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/ChainRelay
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /api/v1
// @schemes http https
package api
