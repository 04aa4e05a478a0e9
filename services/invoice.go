package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"ClinicDesk/invoicepdf"
	"ClinicDesk/mailer"
	"ClinicDesk/models"
	"ClinicDesk/notify"
	"ClinicDesk/repository"
	"ClinicDesk/util"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultSenderName = "ACME Inc."

type InvoiceBoard struct {
	Invoices []models.Invoice              `json:"invoices"`
	Patients []models.PatientWithInvoices `json:"patients"`
}

func newInvoiceNumber() string {
	return "#" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

/*
* Check the patient exists before writing anything
* Build the invoice and compute its totals
* Insert the invoice and attach it to the patient
* If attaching fails, remove the inserted invoice again
 */
func (s *Service) CreateInvoice(ctx context.Context, patientID string, form models.InvoiceForm) (models.Invoice, error) {
	if _, err := s.store.Patients.FindByID(ctx, patientID); err != nil {
		log.Error().Err(err).Str("id", patientID).Msg("Error from FindByID patient while creating invoice")
		return models.Invoice{}, err
	}

	inv := models.Invoice{
		FullName:           form.FullName,
		Email:              form.Email,
		InvoiceID:          newInvoiceNumber(),
		InvoiceDate:        form.InvoiceDate,
		TermsAndConditions: form.TermsAndConditions,
		Terms:              form.Terms,
		Items:              append([]models.InvoiceItem{}, form.Items...),
		AmountPaid:         form.AmountPaid,
	}
	inv.Compute()

	if err := s.store.Invoices.Create(ctx, &inv); err != nil {
		log.Error().Err(err).Msg("Error from Create invoice")
		return inv, err
	}
	if err := s.store.Patients.PushInvoice(ctx, patientID, inv.ID); err != nil {
		log.Error().Err(err).Msg("Error from PushInvoice")
		if derr := s.store.Invoices.Delete(ctx, inv.ID.Hex()); derr != nil {
			log.Error().Err(derr).Str("invoice", inv.ID.Hex()).Msg("Error removing orphaned invoice")
		}
		return inv, fmt.Errorf("attach invoice: %w", err)
	}
	return inv, nil
}

func (s *Service) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	inv, err := s.store.Invoices.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID invoice")
	}
	return inv, err
}

// InvoiceBoard lists the first ten invoices and every patient holding one.
func (s *Service) InvoiceBoard(ctx context.Context) (InvoiceBoard, error) {
	var board InvoiceBoard
	var err error
	if board.Invoices, err = s.store.Invoices.FindAll(ctx, 10); err != nil {
		log.Error().Err(err).Msg("Error from FindAll invoices")
		return board, err
	}
	patients, err := s.store.Patients.FindWithInvoices(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindWithInvoices")
		return board, err
	}
	board.Patients = make([]models.PatientWithInvoices, 0, len(patients))
	for _, p := range patients {
		docs, err := s.invoicesInOrder(ctx, p)
		if err != nil {
			return board, err
		}
		board.Patients = append(board.Patients, models.PatientWithInvoices{Patient: p, InvoiceDocs: docs})
	}
	return board, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := s.store.Invoices.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID invoice")
		return err
	}
	if err := s.store.Invoices.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("Error from Delete invoice")
		return err
	}
	if err := s.store.Patients.PullInvoice(ctx, inv.ID); err != nil {
		log.Error().Err(err).Msg("Error from PullInvoice")
		return fmt.Errorf("detach invoice: %w", err)
	}
	return nil
}

// MaskName keeps the first two characters of s and stars out the rest.
func MaskName(s string) string {
	if utf8.RuneCountInString(s) <= 2 {
		return s
	}
	r := []rune(s)
	return string(r[:2]) + strings.Repeat("*", len(r)-2)
}

func maskedFullName(fName, lName string) string {
	return strings.TrimSpace(MaskName(fName) + " " + MaskName(lName))
}

/*
* Load the invoice and the patient, either missing ends here
* Take the sender block from the clinic name and the doctor's address
* Mask the patient's name
 */
func (s *Service) invoiceDocument(ctx context.Context, req models.InvoicePDFRequest) (invoicepdf.Document, models.Patient, error) {
	var doc invoicepdf.Document
	inv, err := s.store.Invoices.FindByID(ctx, req.InvoiceID)
	if err != nil {
		log.Error().Err(err).Str("id", req.InvoiceID).Msg("Error from FindByID invoice")
		return doc, models.Patient{}, err
	}
	pat, err := s.store.Patients.FindByID(ctx, req.PatientID)
	if err != nil {
		log.Error().Err(err).Str("id", req.PatientID).Msg("Error from FindByID patient")
		return doc, pat, err
	}

	sender := invoicepdf.Sender{Name: defaultSenderName}
	doctor, err := s.store.Settings.Doctor(ctx)
	switch {
	case err == nil:
		a := doctor.Address
		sender = invoicepdf.Sender{Name: doctor.Company, Street: a.Street, State: a.State, City: a.City, Country: a.Country, ZipCode: a.ZipCode}
	case !errors.Is(err, repository.ErrNotFound):
		log.Error().Err(err).Msg("Error from Doctor")
		return doc, pat, err
	}
	if clinic, err := s.store.Settings.Clinic(ctx); err == nil && clinic.Name != "" {
		sender.Name = clinic.Name
	}
	if sender.Name == "" {
		sender.Name = defaultSenderName
	}

	doc = invoicepdf.Document{
		Sender:   sender,
		LogoPath: s.opts.LogoPath,
		Number:   inv.InvoiceID,
		Date:     inv.InvoiceDate,
		Customer: maskedFullName(pat.FName, pat.LName),
		Subtotal: inv.TotalPrice,
		Paid:     inv.AmountPaid,
		Terms:    inv.Terms,
	}
	for _, it := range inv.Items {
		doc.Items = append(doc.Items, invoicepdf.Item{Name: it.ItemName, Description: it.Description, UnitCost: it.UnitCost, Quantity: it.Quantity})
	}
	return doc, pat, nil
}

// WriteInvoicePDF renders the invoice to w.
func (s *Service) WriteInvoicePDF(ctx context.Context, req models.InvoicePDFRequest, w io.Writer) error {
	doc, _, err := s.invoiceDocument(ctx, req)
	if err != nil {
		return err
	}
	if err := invoicepdf.Render(w, doc); err != nil {
		log.Error().Err(err).Msg("Error from Render invoice")
		return err
	}
	return nil
}

/*
* Render the invoice
* Mail it to the patient as invoice.pdf
* Tell the mail stream once it has gone out
 */
func (s *Service) EmailInvoice(ctx context.Context, req models.InvoicePDFRequest) error {
	doc, pat, err := s.invoiceDocument(ctx, req)
	if err != nil {
		return err
	}
	if pat.Email == "" {
		return invalid("patient has no email address")
	}
	var buf bytes.Buffer
	if err := invoicepdf.Render(&buf, doc); err != nil {
		log.Error().Err(err).Msg("Error from Render invoice")
		return err
	}
	msg := mailer.Message{
		To:      pat.Email,
		Subject: "Invoice",
		Text:    "Please find the attached invoice.",
		Attachments: []mailer.Attachment{{
			Filename:    "invoice.pdf",
			ContentType: "application/pdf",
			Content:     buf.Bytes(),
		}},
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		log.Error().Err(err).Msg("Error sending invoice email")
		return fmt.Errorf("send invoice: %w", err)
	}
	if err := s.broker.Publish(ctx, notify.TopicMail, []byte(util.EMAIL_SENT)); err != nil {
		log.Error().Err(err).Msg("Error publishing mail event")
	}
	return nil
}
