package consts

import "time"

const (
	// AnalyticsCacheTTL 房源统计快照缓存时长
	AnalyticsCacheTTL = 5 * time.Minute
	// RollupCacheTTL 用户汇总缓存时长，读路径折算成本低，缓存放短
	RollupCacheTTL = 30 * time.Second
	// TrendingSize 热门榜保留条数
	TrendingSize = 100
)
