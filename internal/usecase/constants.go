package usecase

const (
	// Installment counts accepted by the admin rate mutations. Counts
	// 1..MaxProtectedInstallments ship as defaults and cannot be removed.
	MinInstallments          = 1
	MaxInstallments          = 99
	MaxProtectedInstallments = 12

	// Fee rates are percentages. Exactly 100 would make the fee-inclusive
	// total divide by zero, so the valid range is [0,100).
	MinRatePercent = 0.0
	MaxRatePercent = 100.0

	// Coupon discounts are percentages in (0,50].
	MaxCouponDiscountPercent = 50.0
)
