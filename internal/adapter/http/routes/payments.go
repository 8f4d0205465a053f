package routes

import (
	"traful_pagos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSearch = "/search"
	PathPayway = "/payway"
)

func addPaymentRoutes(rg *gin.RouterGroup, search *handlers.SearchHandler, payment *handlers.PaymentHandler, receipt *handlers.ReceiptHandler) {
	s := rg.Group(PathSearch)
	{
		s.GET("/contributivo", search.SearchContributivo)
		s.GET("/patente", search.SearchPatente)
		s.GET("/deuda", search.SearchDeuda)
	}

	rg.POST("/create_preference", payment.CreatePreference)
	rg.POST("/payment_webhook", payment.PaymentWebhook)
	rg.POST("/debug/simulate_payment", payment.SimulatePayment)

	pw := rg.Group(PathPayway)
	{
		pw.POST("/create_link", payment.CreatePaywayLink)
		pw.POST("/callback", payment.PaywayCallback)
	}

	rg.GET("/receipt/:history_id", receipt.GetReceipt)
	rg.POST("/send_receipt", receipt.SendReceipt)
	rg.GET("/get_history_by_payment_id/:payment_id", receipt.GetHistoryByPaymentID)
}
