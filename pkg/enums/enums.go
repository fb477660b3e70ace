package enums

// ProductCategory partitions the catalog into the two wizard selection pools.
type ProductCategory string

const (
	ProductCategoryChoice1 ProductCategory = "choice1"
	ProductCategoryChoice2 ProductCategory = "choice2"
)

// Valid reports whether the category is one of the two recognized pools.
func (c ProductCategory) Valid() bool {
	return c == ProductCategoryChoice1 || c == ProductCategoryChoice2
}

// NumberPolicy selects the order-number generation strategy.
type NumberPolicy string

const (
	NumberPolicyRandom     NumberPolicy = "random"
	NumberPolicySequential NumberPolicy = "sequential"
)
