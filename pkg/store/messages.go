package store

// Messages are the fallback texts recorded when a failed call carries no
// server detail.
type Messages struct {
	Fetch    string
	Create   string
	Update   string
	Delete   string
	Harvest  string
	Overview string
	Charts   string
	Calendar string
}

var catalogs = map[string]Messages{
	"en": {
		Fetch:    "Failed to load data",
		Create:   "Failed to create",
		Update:   "Failed to update",
		Delete:   "Failed to delete",
		Harvest:  "Failed to record harvest",
		Overview: "Failed to load statistics",
		Charts:   "Failed to load chart data",
		Calendar: "Failed to load calendar",
	},
	"zh": {
		Fetch:    "获取数据失败",
		Create:   "创建失败",
		Update:   "更新失败",
		Delete:   "删除失败",
		Harvest:  "收获登记失败",
		Overview: "获取统计数据失败",
		Charts:   "获取图表数据失败",
		Calendar: "获取日历数据失败",
	},
}

// MessagesFor returns the catalog for locale ("en", "zh", "zh-CN", ...),
// falling back to English.
func MessagesFor(locale string) Messages {
	if m, ok := catalogs[locale]; ok {
		return m
	}
	if len(locale) > 2 {
		if m, ok := catalogs[locale[:2]]; ok {
			return m
		}
	}
	return catalogs["en"]
}
