package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/pkg/qrcode"
	"github.com/sefazor/textback-landing/pkg/storage"
)

type AssetHandler struct {
	store  storage.AssetStore
	qr     *qrcode.QRService
	logger *zap.Logger
}

func NewAssetHandler(store storage.AssetStore, qr *qrcode.QRService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		store:  store,
		qr:     qr,
		logger: logger.Named("asset_handler"),
	}
}

// ServeAsset streams /assets/* from the configured store.
func (h *AssetHandler) ServeAsset(c *fiber.Ctx) error {
	key := strings.TrimPrefix(c.Params("*"), "/")
	if key == "" {
		return fiber.ErrNotFound
	}

	asset, err := h.store.Get(c.UserContext(), key)
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		h.logger.Error("failed to load asset", zap.String("key", key), zap.Error(err))
		return fiber.ErrBadGateway
	}

	if asset.ContentType != "" {
		c.Set(fiber.HeaderContentType, asset.ContentType)
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")

	size := int(asset.Size)
	if size <= 0 {
		size = -1
	}
	return c.SendStream(asset.Body, size)
}

// PlanQRCode renders a PNG QR code linking to a plan on the page.
func (h *AssetHandler) PlanQRCode(c *fiber.Ctx) error {
	plan := c.Params("plan")
	if !models.IsPlan(plan) {
		return fiber.ErrNotFound
	}

	png, err := h.qr.GeneratePlanQRCode(plan, c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		h.logger.Error("failed to render QR code", zap.String("plan", plan), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}
