package entity

// Money represents a monetary amount as the Cost Explorer API returns it:
// a decimal string plus a currency unit.
type Money struct {
	Amount string `json:"Amount"`
	Unit   string `json:"Unit"`
}

// EC2ResourceDetails carries the instance type of an EC2 resource.
type EC2ResourceDetails struct {
	InstanceType string `json:"InstanceType"`
}

// ResourceDetails wraps the per-service detail blocks of a resource.
// Only EC2 is populated by this tool.
type ResourceDetails struct {
	EC2ResourceDetails EC2ResourceDetails `json:"EC2ResourceDetails"`
}

// CurrentInstance describes the instance a recommendation applies to.
type CurrentInstance struct {
	ResourceID      string          `json:"ResourceId"`
	InstanceName    string          `json:"InstanceName"`
	ResourceDetails ResourceDetails `json:"ResourceDetails"`
}

// TargetInstance is one candidate instance to move to under a Modify
// recommendation. ExpectedCost may carry a placeholder amount when no
// pricing information is available.
type TargetInstance struct {
	EstimatedMonthlySavings Money           `json:"EstimatedMonthlySavings"`
	ResourceDetails         ResourceDetails `json:"ResourceDetails"`
	ExpectedCost            Money           `json:"ExpectedCost"`
	DefaultTargetInstance   bool            `json:"DefaultTargetInstance,omitempty"`
}

// ModifyRecommendationDetail lists the target instances of a Modify
// recommendation together with the savings of the preferred target.
type ModifyRecommendationDetail struct {
	TargetInstances         []TargetInstance `json:"TargetInstances"`
	EstimatedMonthlySavings Money            `json:"EstimatedMonthlySavings"`
}

// TerminateRecommendationDetail carries the savings of a Terminate
// recommendation.
type TerminateRecommendationDetail struct {
	EstimatedMonthlySavings Money `json:"EstimatedMonthlySavings"`
}

// RightsizingType distinguishes the two kinds of rightsizing actions.
type RightsizingType string

const (
	RightsizingTypeModify    RightsizingType = "Modify"
	RightsizingTypeTerminate RightsizingType = "Terminate"
)

// RightsizingRecommendation is a single recommendation in the Cost Explorer
// wire shape. The same shape is emitted for synthetic recommendations so
// that report consumers never need to branch on the source.
type RightsizingRecommendation struct {
	AccountID                     string                         `json:"AccountId"`
	CurrentInstance               CurrentInstance                `json:"CurrentInstance"`
	RightsizingType               RightsizingType                `json:"RightsizingType"`
	ModifyRecommendationDetail    *ModifyRecommendationDetail    `json:"ModifyRecommendationDetail,omitempty"`
	TerminateRecommendationDetail *TerminateRecommendationDetail `json:"TerminateRecommendationDetail,omitempty"`
}

// NewTargetInstance builds a Modify target candidate.
func NewTargetInstance(instanceType string, savings, expectedCost Money) TargetInstance {
	return TargetInstance{
		EstimatedMonthlySavings: savings,
		ResourceDetails:         ResourceDetails{EC2ResourceDetails: EC2ResourceDetails{InstanceType: instanceType}},
		ExpectedCost:            expectedCost,
	}
}

// NewModifyRecommendation builds a Modify recommendation. The detail-level
// savings should be those of the preferred target instance.
func NewModifyRecommendation(accountID, resourceID, instanceName, currentType string, targets []TargetInstance, savings Money) RightsizingRecommendation {
	rec := newRecommendation(accountID, resourceID, instanceName, currentType)
	rec.RightsizingType = RightsizingTypeModify
	rec.ModifyRecommendationDetail = &ModifyRecommendationDetail{
		TargetInstances:         targets,
		EstimatedMonthlySavings: savings,
	}
	return rec
}

// NewTerminateRecommendation builds a Terminate recommendation.
func NewTerminateRecommendation(accountID, resourceID, instanceName, currentType string, savings Money) RightsizingRecommendation {
	rec := newRecommendation(accountID, resourceID, instanceName, currentType)
	rec.RightsizingType = RightsizingTypeTerminate
	rec.TerminateRecommendationDetail = &TerminateRecommendationDetail{
		EstimatedMonthlySavings: savings,
	}
	return rec
}

func newRecommendation(accountID, resourceID, instanceName, currentType string) RightsizingRecommendation {
	return RightsizingRecommendation{
		AccountID: accountID,
		CurrentInstance: CurrentInstance{
			ResourceID:      resourceID,
			InstanceName:    instanceName,
			ResourceDetails: ResourceDetails{EC2ResourceDetails: EC2ResourceDetails{InstanceType: currentType}},
		},
	}
}
