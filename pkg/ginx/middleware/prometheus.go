package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusBuilder 主要是统计响应时间和活跃请求数
// 除了 Name 是必选的，其它都是可选的，所以直接做成了公开字段
type PrometheusBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
	// 实例名字，可以用本地 IP，默认每次启动随机一个
	InstanceID string
	Registerer prometheus.Registerer
}

func NewPrometheusBuilder(namespace, subsystem, name, help string) *PrometheusBuilder {
	return &PrometheusBuilder{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Name:       name,
		Help:       help,
		InstanceID: uuid.NewString(),
		Registerer: prometheus.DefaultRegisterer,
	}
}

func (p *PrometheusBuilder) BuildResponseTime() gin.HandlerFunc {
	// pattern 是命中路由
	labels := []string{"method", "pattern", "status"}
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: p.Namespace,
		Subsystem: p.Subsystem,
		Name:      p.Name + "_resp_time",
		Help:      p.Help,
		ConstLabels: map[string]string{
			"instance_id": p.InstanceID,
		},
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.9:   0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, labels)
	p.Registerer.MustRegister(vector)
	return func(ctx *gin.Context) {
		start := time.Now()
		defer func() {
			vector.WithLabelValues(ctx.Request.Method, ctx.FullPath(),
				strconv.Itoa(ctx.Writer.Status())).
				Observe(float64(time.Since(start).Milliseconds()))
		}()
		ctx.Next()
	}
}

func (p *PrometheusBuilder) BuildActiveRequest() gin.HandlerFunc {
	// 上传接口可能会很慢，关心每个路由上挂着多少请求
	gaugeVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: p.Namespace,
		Subsystem: p.Subsystem,
		Name:      p.Name + "_active_req",
		Help:      p.Help,
		ConstLabels: map[string]string{
			"instance_id": p.InstanceID,
		},
	}, []string{"method", "pattern"})
	p.Registerer.MustRegister(gaugeVec)
	return func(ctx *gin.Context) {
		gauge := gaugeVec.WithLabelValues(ctx.Request.Method, ctx.FullPath())
		gauge.Inc()
		defer gauge.Dec()
		ctx.Next()
	}
}
