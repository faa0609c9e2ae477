package model

// Intent names recognized by the classifier catalog. IntentGeneralQuery is
// the fallback when no trigger pattern matches.
const (
	IntentSpendingQuery      = "spending_query"
	IntentIncomeQuery        = "income_query"
	IntentBalanceQuery       = "balance_query"
	IntentCategoryAnalysis   = "category_analysis"
	IntentPrediction         = "prediction"
	IntentOptimization       = "optimization"
	IntentBudgetStatus       = "budget_status"
	IntentAnomalyDetection   = "anomaly_detection"
	IntentComparison         = "comparison"
	IntentGoalTracking       = "goal_tracking"
	IntentInvestmentAdvice   = "investment_advice"
	IntentLoanRecommendation = "loan_recommendation"
	IntentTaxPlanning        = "tax_planning"
	IntentCreditScore        = "credit_score"
	IntentMerchantAnalysis   = "merchant_analysis"
	IntentTransactionSearch  = "transaction_search"
	IntentRecurringExpenses  = "recurring_expenses"
	IntentSavingsChallenge   = "savings_challenge"
	IntentGeneralQuery       = "general_query"
)

// Intent is the classifier's decision for one query.
type Intent struct {
	Name       string   `json:"name"`
	Entities   []Entity `json:"entities"`
	Confidence float64  `json:"confidence"`
}

// HasEntity reports whether the intent carries at least one entity of the
// given type.
func (i Intent) HasEntity(t EntityType) bool {
	for _, e := range i.Entities {
		if e.Type == t {
			return true
		}
	}
	return false
}
