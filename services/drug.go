package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/repository"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
)

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

/*
* Parse expense and stock, both must be numeric
* Compute the purchase cost and whether the expiry date has passed
* Upsert the drug by idNumber
 */
func (s *Service) SaveDrug(ctx context.Context, form models.DrugForm) (models.Drug, error) {
	expense, err := parseAmount(form.Expense)
	if err != nil {
		return models.Drug{}, invalid(util.EXPENSE_AND_STOCK_NUMBER)
	}
	stock, err := parseAmount(form.Stock)
	if err != nil {
		return models.Drug{}, invalid(util.EXPENSE_AND_STOCK_NUMBER)
	}

	d := models.Drug{
		IDNumber:                       form.IDNumber,
		DrugName:                       form.DrugName,
		Category:                       form.Category,
		CompanyName:                    form.CompanyName,
		PurchaseDate:                   form.PurchaseDate,
		ExpiredDate:                    form.ExpiredDate,
		Price:                          form.Price,
		Expense:                        expense,
		Stock:                          stock,
		Description:                    form.Description,
		EmployeeName:                   form.EmployeeName,
		ThePriceOfTheQuantityPurchased: expense * stock,
		Expired:                        expiredBy(form.ExpiredDate, s.now()),
	}
	if err := s.store.Drugs.UpsertByIDNumber(ctx, d); err != nil {
		log.Error().Err(err).Msg("Error from UpsertByIDNumber drug")
		return d, err
	}
	return d, nil
}

func (s *Service) GetDrug(ctx context.Context, id string) (models.Drug, error) {
	d, err := s.store.Drugs.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID drug")
	}
	return d, err
}

func (s *Service) ListDrugs(ctx context.Context) ([]models.Drug, error) {
	drugs, err := s.store.Drugs.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindAll drugs")
	}
	return drugs, err
}

func (s *Service) DeleteDrug(ctx context.Context, id string) error {
	if err := s.store.Drugs.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from Delete drug")
		return err
	}
	return nil
}

// expiredBy matches the sweep: a dated drug is expired once its date is
// before today.
func expiredBy(date string, now time.Time) bool {
	return date != "" && date < now.Format(repository.DateLayout)
}

// SweepExpiredDrugs flags every drug whose expiry date has passed.
func (s *Service) SweepExpiredDrugs(ctx context.Context) (int64, error) {
	n, err := s.store.Drugs.MarkExpired(ctx, s.now())
	if err != nil {
		log.Error().Err(err).Msg("Error from MarkExpired")
		return 0, err
	}
	log.Info().Int64("count", n).Msg("Expired drugs flagged")
	return n, nil
}
