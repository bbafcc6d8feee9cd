package model

// Dashboard 一次渲染所需的全部数据
type Dashboard struct {
	Title     string       `json:"title"`
	Subtitle  string       `json:"subtitle"`
	KPIs      []KPISummary `json:"kpis"`
	Charts    []ChartSpec  `json:"charts"`
	Filters   MonthFilter  `json:"filters"`
	Narrative bool         `json:"narrative"`
}

// MonthFilter 侧边栏的月份多选框，只回显选择，不影响 KPI 和图表
type MonthFilter struct {
	Header   string   `json:"header"`
	Label    string   `json:"label"`
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

// PreviewRequest 自定义数据集预览
type PreviewRequest struct {
	Records []MonthlyRecord `json:"records" binding:"required,dive"`
}

// PreviewResponse 预览结果
type PreviewResponse struct {
	KPIs   []KPISummary `json:"kpis"`
	Charts []ChartSpec  `json:"charts"`
}

// Narrative 案例分析文本
type Narrative struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}
