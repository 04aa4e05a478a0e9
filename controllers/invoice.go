package controllers

import (
	"bytes"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *Controller) Invoice(router *gin.Engine) {
	router.GET("/invoices", h.private(h.InvoicesPage)...)
	router.GET("/create-invoice", h.private(h.CreateInvoicePage)...)
	router.GET("/api/invoices/:invoiceID", h.FetchInvoice)

	router.POST("/patients/:id/invoices", h.CreateInvoice)
	router.DELETE("/delete-invoice/:invoiceID", h.DeleteInvoice)
	router.POST("/generate-pdf", h.EmailInvoice)
	router.POST("/download-pdf", h.DownloadInvoice)
}

func (h *Controller) InvoicesPage(c *gin.Context) {
	board, err := h.svc.InvoiceBoard(c.Request.Context())
	if err != nil {
		failPage(c, err, util.INVOICE_NOT_FOUND)
		return
	}
	h.views.Page(c, "invoices", gin.H{"foundPatients": board.Patients, "foundInvoices": board.Invoices})
}

func (h *Controller) CreateInvoicePage(c *gin.Context) {
	h.views.Page(c, "createInvoice", nil)
}

func (h *Controller) FetchInvoice(c *gin.Context) {
	inv, err := h.svc.GetInvoice(c.Request.Context(), c.Param("invoiceID"))
	if err != nil {
		fail(c, err, util.INVOICE_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, inv)
}

var itemKey = regexp.MustCompile(`^items\[(\d+)\]\[(\w+)\]$`)

// formItems reads items[<i>][<field>] keys from a urlencoded invoice form.
func formItems(c *gin.Context) ([]models.InvoiceItem, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	byIndex := map[int]*models.InvoiceItem{}
	for key, values := range c.Request.PostForm {
		m := itemKey.FindStringSubmatch(key)
		if m == nil || len(values) == 0 {
			continue
		}
		i, _ := strconv.Atoi(m[1])
		item, ok := byIndex[i]
		if !ok {
			item = &models.InvoiceItem{}
			byIndex[i] = item
		}
		v := strings.TrimSpace(values[0])
		var err error
		switch m[2] {
		case "itemName":
			item.ItemName = v
		case "description":
			item.Description = v
		case "unitCost":
			item.UnitCost, err = strconv.ParseFloat(v, 64)
		case "quantity":
			item.Quantity, err = strconv.ParseFloat(v, 64)
		}
		if err != nil {
			return nil, err
		}
	}
	indexes := make([]int, 0, len(byIndex))
	for i := range byIndex {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	items := make([]models.InvoiceItem, 0, len(indexes))
	for _, i := range indexes {
		items = append(items, *byIndex[i])
	}
	return items, nil
}

/*
* Bind the invoice, items come from the JSON body or from items[i][field] form keys
* Create it against the patient and go back to the profile
 */
func (h *Controller) CreateInvoice(c *gin.Context) {
	var form models.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if c.ContentType() != gin.MIMEJSON {
		items, err := formItems(c)
		if err != nil {
			badRequest(c, err)
			return
		}
		form.Items = items
		if err := binding.Validator.ValidateStruct(&form); err != nil {
			badRequest(c, err)
			return
		}
	}
	patientID := c.Param("id")
	if _, err := h.svc.CreateInvoice(c.Request.Context(), patientID, form); err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/patient-profile?id="+patientID)
}

func (h *Controller) DeleteInvoice(c *gin.Context) {
	if err := h.svc.DeleteInvoice(c.Request.Context(), c.Param("invoiceID")); err != nil {
		fail(c, err, util.INVOICE_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

func (h *Controller) EmailInvoice(c *gin.Context) {
	var req models.InvoicePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.EmailInvoice(c.Request.Context(), req); err != nil {
		fail(c, err, util.INVOICE_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

func (h *Controller) DownloadInvoice(c *gin.Context) {
	var req models.InvoicePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var buf bytes.Buffer
	if err := h.svc.WriteInvoicePDF(c.Request.Context(), req, &buf); err != nil {
		fail(c, err, util.INVOICE_NOT_FOUND)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=invoice.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
