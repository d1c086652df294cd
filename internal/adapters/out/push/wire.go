package push

import (
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
)

const (
	sendPath        = "/--/api/v2/push/send"
	receiptsPath    = "/--/api/v2/push/getReceipts"
	statusOK        = "ok"
	statusError     = "error"
	deviceNotActive = "DeviceNotRegistered"
)

type message struct {
	To    string      `json:"to"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Sound string      `json:"sound,omitempty"`
	Data  messageData `json:"data"`
}

type messageData struct {
	ShipmentID kernel.UUID     `json:"shipmentId"`
	NewStatus  shipment.Status `json:"newStatus"`
	Timestamp  time.Time       `json:"timestamp"`
}

type errorDetails struct {
	Error string `json:"error,omitempty"`
}

type ticket struct {
	Status  string       `json:"status"`
	ID      string       `json:"id,omitempty"`
	Message string       `json:"message,omitempty"`
	Details errorDetails `json:"details"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type sendResponse struct {
	Data   []ticket   `json:"data"`
	Errors []apiError `json:"errors,omitempty"`
}

type receiptsRequest struct {
	IDs []string `json:"ids"`
}

type receipt struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Details errorDetails `json:"details"`
}

type receiptsResponse struct {
	Data   map[string]receipt `json:"data"`
	Errors []apiError         `json:"errors,omitempty"`
}
