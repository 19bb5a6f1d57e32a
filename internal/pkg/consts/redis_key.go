package consts

const (
	ListingAnalyticsKey = "listing:analytics:"
	UserRollupKey       = "user:rollup:"
	ListingDirtyKey     = "listing:dirty"
	ListingTrendingKey  = "listing:trending"
)
