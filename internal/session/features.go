package session

import (
	"slices"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

var anonymousFeatures = []domain.Feature{
	domain.FeatureSearch,
	domain.FeatureFilter,
	domain.FeatureAuth,
}

var userFeatures = []domain.Feature{
	domain.FeatureDashboard,
	domain.FeaturePaymentHistory,
	domain.FeatureInvoiceTypeSelector,
	domain.FeaturePayment,
}

// Features returns the features available to user. Signed-in users get the
// account features on top of the anonymous set.
func Features(user *domain.User) []domain.Feature {
	out := slices.Clone(anonymousFeatures)
	if user != nil {
		out = append(out, userFeatures...)
	}
	return out
}

// Allows reports whether user may use feature f.
func Allows(user *domain.User, f domain.Feature) bool {
	return slices.Contains(Features(user), f)
}
