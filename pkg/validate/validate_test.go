package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveTopStruct(t *testing.T) {
	res := RemoveTopStruct(map[string]string{
		"SignedURLReq.url": "url为必填字段",
		"name":             "name为必填字段",
	})
	assert.Equal(t, map[string]string{
		"url":  "url为必填字段",
		"name": "name为必填字段",
	}, res)
}

func TestInitTrans(t *testing.T) {
	assert.NoError(t, InitTrans("zh"))
	assert.NotNil(t, Trans)
	assert.Error(t, InitTrans("fr"))
}
