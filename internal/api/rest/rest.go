package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-tipping-ledger/internal/api/middleware"
)

const apiVersion = "v1"

// SetupRoutes configures all REST API routes. Reads are public, mutations require authentication.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	router.GET("/health", handler.HealthCheck)

	authed := middleware.Auth(authCfg)

	v1 := router.Group("/api/" + apiVersion)
	{
		gov := v1.Group("/governance")
		gov.GET("", handler.GetGovernance)
		gov.GET("/paused", handler.IsPaused)
		gov.POST("/initialize", authed, handler.Initialize)
		gov.PUT("/fee", authed, handler.SetFee)
		gov.PUT("/threshold", authed, handler.SetThreshold)
		gov.POST("/pause", authed, handler.Pause)
		gov.POST("/unpause", authed, handler.Unpause)

		items := v1.Group("/items/:item_id")
		items.GET("", handler.GetItem)
		items.POST("/tips", authed, handler.RecordTip)
		items.GET("/tips", handler.GetItemTips)
		items.GET("/total", handler.GetItemTotal)
		items.GET("/eligibility", handler.GetEligibility)
		items.POST("/highlights/:highlight_id/tips", authed, handler.RecordHighlightTip)
		items.POST("/collectible", authed, handler.Mint)
		items.GET("/collectible", handler.GetItemCollectible)

		v1.GET("/highlights/:highlight_id/tips", handler.GetHighlightTips)
		v1.GET("/volume", handler.GetVolume)
		v1.GET("/balances/:identity", handler.GetBalance)
		v1.POST("/balances/:identity/withdraw", authed, handler.Withdraw)

		v1.GET("/tokens/:token_id", handler.GetToken)
		v1.POST("/tokens/:token_id/transfer", authed, handler.TransferToken)
		v1.GET("/owners/:identity/tokens", handler.GetOwnedTokens)
		v1.GET("/collectibles/threshold", handler.GetThreshold)
	}
}
