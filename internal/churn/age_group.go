package churn

// AgeGroup is the derived age bucket attached to every record at load time.
type AgeGroup string

const (
	AgeGroup20To39 AgeGroup = "20-39"
	AgeGroup40To49 AgeGroup = "40-49"
	AgeGroup50To59 AgeGroup = "50-59"
	AgeGroup60To79 AgeGroup = "60-79"

	// AgeGroupUndefined marks ages outside [20, 79]. Records carrying it are
	// excluded from every age-based aggregation.
	AgeGroupUndefined AgeGroup = ""
)

// AssignAgeGroup buckets a raw age into one of four fixed, non-overlapping
// groups. The first three buckets are half-open on the upper bound; the last
// includes 79.
func AssignAgeGroup(age int) AgeGroup {
	switch {
	case age >= 20 && age < 40:
		return AgeGroup20To39
	case age >= 40 && age < 50:
		return AgeGroup40To49
	case age >= 50 && age < 60:
		return AgeGroup50To59
	case age >= 60 && age <= 79:
		return AgeGroup60To79
	default:
		return AgeGroupUndefined
	}
}

// AgeGroups returns the defined buckets in render order. Consumers must not
// reorder age groups alphabetically or by discovery order.
func AgeGroups() []AgeGroup {
	return []AgeGroup{AgeGroup20To39, AgeGroup40To49, AgeGroup50To59, AgeGroup60To79}
}

// AgeGroupLabels returns the bucket labels in render order.
func AgeGroupLabels() []string {
	groups := AgeGroups()
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = string(g)
	}
	return labels
}
