package ginx

type Result struct {
	// 业务错误码，不是 HTTP 状态码
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}
