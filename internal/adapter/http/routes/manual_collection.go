package routes

import (
	"traful_pagos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addManualCollectionRoutes(rg *gin.RouterGroup, manual *handlers.ManualCollectionHandler) {
	rg.POST("/recaudacion_efectivo", manual.RegisterRecaudacion)
	rg.POST("/patente_efectivo", manual.RegisterPatente)
	// older patente form posts here
	rg.POST("/patente_manual", manual.RegisterPatente)
	rg.POST("/plan_pago", manual.RegisterPlanPago)

	rg.POST("/send_payment_link", manual.SendPaymentLink)
	rg.POST("/upload_comprobante", manual.UploadProof)
}
