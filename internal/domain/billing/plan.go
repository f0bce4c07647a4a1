package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/domain/money"
)

// GeneratePlan splits a purchase into count installments with exact cents
// arithmetic. The division remainder is absorbed entirely by the first
// installment, so the amounts always sum back to the total. Due dates start
// at the resolved first due date and advance one calendar month per
// installment, preserving the nominal due day (clamped in short months).
func GeneratePlan(
	totalAmount decimal.Decimal,
	count int,
	purchaseDate time.Time,
	closingDay int,
	dueDay int,
) ([]entity.Installment, error) {
	if count < 1 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if !totalAmount.IsPositive() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeNonPositiveAmount,
			"total amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	firstDueDate, err := ResolveFirstDueDate(purchaseDate, closingDay, dueDay)
	if err != nil {
		return nil, err
	}

	totalCents := money.ToCents(totalAmount)
	baseCents := totalCents / int64(count)
	remainderCents := totalCents % int64(count)

	installments := make([]entity.Installment, count)
	for i := 0; i < count; i++ {
		cents := baseCents
		if i == 0 {
			cents += remainderCents
		}

		dueYear, dueMonth := addMonths(firstDueDate.Year(), firstDueDate.Month(), i)

		installments[i] = entity.Installment{
			Number:  i + 1,
			Amount:  money.FromCents(cents),
			DueDate: dateOnDay(dueYear, dueMonth, dueDay, firstDueDate.Location()),
		}
	}

	return installments, nil
}
