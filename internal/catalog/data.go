package catalog

import "github.com/zamanlab/bank-advisor-be/internal/models"

func amount(v int) *int { return &v }

// defaultProducts is the bank's product lineup. Retail first, then SME;
// catalog order follows this slice.
var defaultProducts = []models.Product{
	{
		ID:          "bnpl_retail",
		Name:        "BNPL installments",
		Category:    models.CategoryRetail,
		Type:        "Financing",
		MinAmount:   amount(10000),
		MaxAmount:   amount(300000),
		Term:        "1-12 months",
		AgeRange:    "18-63",
		Fee:         "from 300 KZT",
		Description: "Short-term installment plan for purchases with no overpayment.",
		Islamic:     false,
		Target:      models.TargetRetail,
	},
	{
		ID:          "islamic_financing_retail",
		Name:        "Islamic financing",
		Category:    models.CategoryRetail,
		Type:        "Financing",
		MinAmount:   amount(100000),
		MaxAmount:   amount(5000000),
		Term:        "3-60 months",
		AgeRange:    "18-60",
		Fee:         "from 6 000 KZT",
		Description: "Unsecured Sharia-compliant financing for personal needs.",
		Islamic:     true,
		Target:      models.TargetRetail,
	},
	{
		ID:          "islamic_mortgage",
		Name:        "Islamic mortgage",
		Category:    models.CategoryRetail,
		Type:        "Financing",
		MinAmount:   amount(3000000),
		MaxAmount:   amount(75000000),
		Term:        "12-240 months",
		AgeRange:    "25-60",
		Fee:         "from 200 000 KZT",
		Description: "Long-term home financing structured on Islamic finance principles.",
		Islamic:     true,
		Target:      models.TargetRetail,
	},
	{
		ID:             "kopilka",
		Name:           "Kopilka savings",
		Category:       models.CategoryRetail,
		Type:           "Investment",
		MinAmount:      amount(1000),
		MaxAmount:      amount(20000000),
		Term:           "1-12 months",
		ExpectedReturn: "up to 18%",
		Description:    "Flexible investment product earning up to 18% per year.",
		Islamic:        false,
		Target:         models.TargetRetail,
	},
	{
		ID:             "wakala",
		Name:           "Wakala",
		Category:       models.CategoryRetail,
		Type:           "Investment",
		MinAmount:      amount(50000),
		MaxAmount:      nil, // no upper limit
		Term:           "3-36 months",
		ExpectedReturn: "up to 20%",
		Description:    "Sharia-compliant investment with returns up to 20%, aimed at medium-term placements.",
		Islamic:        true,
		Target:         models.TargetRetail,
	},
	{
		ID:          "business_card_overdraft",
		Name:        "Business card (overdraft)",
		Category:    models.CategorySME,
		Type:        "Islamic credit line",
		MinAmount:   amount(100000),
		MaxAmount:   amount(10000000),
		Term:        "up to 30 days",
		AgeRange:    "21-63",
		Fee:         "from 3 000 KZT",
		Description: "Account overdraft for short-term business operations.",
		Islamic:     true,
		Target:      models.TargetSME,
	},
	{
		ID:          "islamic_financing_sme_unsecured",
		Name:        "Islamic financing (unsecured)",
		Category:    models.CategorySME,
		Type:        "Financing",
		MinAmount:   amount(100000),
		MaxAmount:   amount(10000000),
		Term:        "3-60 months",
		AgeRange:    "21-63",
		Fee:         "from 12 000 KZT",
		Description: "Sharia-compliant business financing with no collateral.",
		Islamic:     true,
		Target:      models.TargetSME,
	},
	{
		ID:          "islamic_financing_sme_secured",
		Name:        "Islamic financing (secured)",
		Category:    models.CategorySME,
		Type:        "Financing",
		MinAmount:   amount(100000),
		MaxAmount:   amount(10000000),
		Term:        "3-60 months",
		AgeRange:    "21-63",
		Fee:         "from 12 000 KZT",
		Description: "Collateral-backed Sharia-compliant financing for business growth.",
		Islamic:     true,
		Target:      models.TargetSME,
	},
	{
		ID:             "overnight_deposit",
		Name:           "Overnight deposit",
		Category:       models.CategorySME,
		Type:           "Deposit",
		MinAmount:      amount(1000000),
		MaxAmount:      amount(100000000),
		Term:           "1-12 months",
		ExpectedReturn: "12%",
		Description:    "Short-term business deposit yielding 12%.",
		Islamic:        false,
		Target:         models.TargetSME,
	},
	{
		ID:             "profitable_deposit",
		Name:           "Profitable deposit",
		Category:       models.CategorySME,
		Type:           "Deposit",
		MinAmount:      amount(500000),
		MaxAmount:      amount(100000000),
		Term:           "3-12 months",
		ExpectedReturn: "17%",
		Description:    "Medium-term business deposit yielding up to 17%.",
		Islamic:        false,
		Target:         models.TargetSME,
	},
	{
		ID:          "business_card_payment",
		Name:        "Business card (payment)",
		Category:    models.CategorySME,
		Type:        "Payment product",
		// unpriced: fee-based service, excluded from amount comparisons
		Fee:         "0 KZT",
		Description: "Free payment card for business with up to 1% cashback on business spending categories and a daily limit of 10 000 000 KZT.",
		Islamic:     false,
		Target:      models.TargetSME,
	},
	{
		ID:          "tariff_packages",
		Name:        "Tariff packages (cash management)",
		Category:    models.CategorySME,
		Type:        "Cash management",
		// unpriced: fee-based service, excluded from amount comparisons
		Fee:         "0-15 000 KZT/month",
		Description: "Cash management bundles covering 10-200 payments per month, free account opening, counterparty checks and tax reporting services.",
		Islamic:     false,
		Target:      models.TargetSME,
	},
}
