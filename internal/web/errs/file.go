package errs

// File 部分，模块代码使用 02
const (
	// FileInvalidInput 参数不对，比如没有带文件
	FileInvalidInput = 402001
	// FileTooLarge 文件超过大小限制
	FileTooLarge = 402002
	// FileUploadTooFrequent 上传太频繁，被限流了
	FileUploadTooFrequent = 402003
	// FileInternalServerError 文件模块系统内部错误，包括存储服务报错
	FileInternalServerError = 502001
)
