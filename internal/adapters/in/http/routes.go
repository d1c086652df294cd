package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of the API document.
type ServerInterface interface {
	// (POST /api/v1/shipments)
	CreateShipment(ctx echo.Context) error
	// (GET /api/v1/shipments/{shipmentId})
	GetShipment(ctx echo.Context, shipmentId uuid.UUID) error
	// (PUT /api/v1/shipments/{shipmentId}/status)
	ChangeShipmentStatus(ctx echo.Context, shipmentId uuid.UUID) error
	// (PUT /api/v1/shipments/{shipmentId}/carrier)
	AssignCarrier(ctx echo.Context, shipmentId uuid.UUID) error
	// (POST /api/v1/shipments/{shipmentId}/disputes)
	FileDispute(ctx echo.Context, shipmentId uuid.UUID) error
	// (GET /api/v1/shipments/{shipmentId}/dispute)
	GetActiveDispute(ctx echo.Context, shipmentId uuid.UUID) error
	// (GET /api/v1/shipments/{shipmentId}/history)
	GetShipmentHistory(ctx echo.Context, shipmentId uuid.UUID) error
	// (POST /api/v1/push-tokens)
	RegisterPushToken(ctx echo.Context) error
	// (GET /api/v1/events)
	StreamEvents(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindShipmentID(ctx echo.Context) (uuid.UUID, error) {
	var shipmentId uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"), &shipmentId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}
	return shipmentId, nil
}

func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	return w.Handler.CreateShipment(ctx)
}

func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	shipmentId, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetShipment(ctx, shipmentId)
}

func (w *ServerInterfaceWrapper) ChangeShipmentStatus(ctx echo.Context) error {
	shipmentId, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeShipmentStatus(ctx, shipmentId)
}

func (w *ServerInterfaceWrapper) AssignCarrier(ctx echo.Context) error {
	shipmentId, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignCarrier(ctx, shipmentId)
}

func (w *ServerInterfaceWrapper) FileDispute(ctx echo.Context) error {
	shipmentId, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.FileDispute(ctx, shipmentId)
}

func (w *ServerInterfaceWrapper) GetActiveDispute(ctx echo.Context) error {
	shipmentId, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetActiveDispute(ctx, shipmentId)
}

func (w *ServerInterfaceWrapper) GetShipmentHistory(ctx echo.Context) error {
	shipmentId, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetShipmentHistory(ctx, shipmentId)
}

func (w *ServerInterfaceWrapper) RegisterPushToken(ctx echo.Context) error {
	return w.Handler.RegisterPushToken(ctx)
}

func (w *ServerInterfaceWrapper) StreamEvents(ctx echo.Context) error {
	return w.Handler.StreamEvents(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL registers every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/shipments", wrapper.CreateShipment)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId", wrapper.GetShipment)
	router.PUT(baseURL+"/api/v1/shipments/:shipmentId/status", wrapper.ChangeShipmentStatus)
	router.PUT(baseURL+"/api/v1/shipments/:shipmentId/carrier", wrapper.AssignCarrier)
	router.POST(baseURL+"/api/v1/shipments/:shipmentId/disputes", wrapper.FileDispute)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId/dispute", wrapper.GetActiveDispute)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId/history", wrapper.GetShipmentHistory)
	router.POST(baseURL+"/api/v1/push-tokens", wrapper.RegisterPushToken)
	router.GET(baseURL+"/api/v1/events", wrapper.StreamEvents)
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}
