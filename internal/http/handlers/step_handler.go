package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "catalogproxy/internal/log"
	"catalogproxy/internal/metrics"
	"catalogproxy/internal/services"
	"catalogproxy/internal/validate"
)

const (
	msgFetchFailed   = "Failed to fetch products."
	msgFetchDBFailed = "Failed to fetch products from DB."
)

type StepHandler struct {
	Catalog *services.CatalogService
}

type queryOpts struct {
	dates  bool
	brands bool
	paged  bool
}

// parseQuery validates the step's query params in a fixed order: dates,
// then page_size, then page_number. A non-nil error means a response was sent.
func parseQuery(c *fiber.Ctx, o queryOpts) (services.Query, bool, error) {
	var q services.Query
	if o.dates {
		q.Start = c.Query("release_date_start")
		if q.Start != "" && !validate.Date(q.Start) {
			return q, false, badRequest(c, "release_date_start", "Invalid release_date_start format. Use YYYY-MM-DD.")
		}
		q.End = c.Query("release_date_end")
		if q.End != "" && !validate.Date(q.End) {
			return q, false, badRequest(c, "release_date_end", "Invalid release_date_end format. Use YYYY-MM-DD.")
		}
	}
	if o.paged {
		size, ok := validate.PageParam(c.Query("page_size"))
		if !ok {
			return q, false, badRequest(c, "page_size", "page_size is required and must be a positive integer.")
		}
		number, ok := validate.PageParam(c.Query("page_number"))
		if !ok {
			return q, false, badRequest(c, "page_number", "page_number is required and must be a positive integer.")
		}
		q.PageSize, q.PageNumber = size, number
	}
	if o.brands {
		q.Brands = validate.Brands(c.Query("brands"))
	}
	return q, true, nil
}

func (h *StepHandler) products(c *fiber.Ctx, step string, o queryOpts) error {
	q, ok, err := parseQuery(c, o)
	if !ok {
		return err
	}
	res, err := h.Catalog.Products(c.UserContext(), q)
	metrics.RecordUpstream(step, err)
	if err != nil {
		return serverError(c, step+".fetch.fail", msgFetchFailed, err)
	}
	metrics.RecordRejected(res.Stats)
	applog.Debug(c, step+".filter", map[string]any{"kept": res.Stats.Kept, "rejected": res.Stats.Rejected})
	return c.JSON(res.Items)
}

// Step1 lists complete upstream products.
func (h *StepHandler) Step1(c *fiber.Ctx) error {
	return h.products(c, "step1", queryOpts{})
}

// Step2 adds the release date range.
func (h *StepHandler) Step2(c *fiber.Ctx) error {
	return h.products(c, "step2", queryOpts{dates: true})
}

// Step3 adds the brands filter.
func (h *StepHandler) Step3(c *fiber.Ctx) error {
	return h.products(c, "step3", queryOpts{dates: true, brands: true})
}

// Step4 adds mandatory pagination.
func (h *StepHandler) Step4(c *fiber.Ctx) error {
	return h.products(c, "step4", queryOpts{dates: true, brands: true, paged: true})
}

// Step5 joins the page with the upstream brands list.
func (h *StepHandler) Step5(c *fiber.Ctx) error {
	q, ok, err := parseQuery(c, queryOpts{dates: true, brands: true, paged: true})
	if !ok {
		return err
	}
	res, err := h.Catalog.JoinedRemote(c.UserContext(), q)
	metrics.RecordUpstream("step5", err)
	if err != nil {
		return serverError(c, "step5.fetch.fail", msgFetchFailed, err)
	}
	metrics.RecordRejected(res.Stats)
	applog.Debug(c, "step5.filter", map[string]any{"kept": res.Stats.Kept, "rejected": res.Stats.Rejected})
	return c.JSON(res.Items)
}

// Step6 serves the same shape as Step5 from the local store.
func (h *StepHandler) Step6(c *fiber.Ctx) error {
	q, ok, err := parseQuery(c, queryOpts{dates: true, brands: true, paged: true})
	if !ok {
		return err
	}
	items, err := h.Catalog.JoinedStored(c.UserContext(), q)
	if err != nil {
		return serverError(c, "step6.store.fail", msgFetchDBFailed, err)
	}
	return c.JSON(items)
}
