package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Authorize_Disabled(t *testing.T) {
	p := Policy{Enabled: false}

	// 闸门关闭时任何口令组合都放行
	assert.True(t, p.Authorize("stored", "anything"))
	assert.True(t, p.Authorize("stored", ""))
	assert.True(t, p.Authorize("", ""))
}

func TestPolicy_Authorize_Enabled(t *testing.T) {
	p := Policy{Enabled: true}

	assert.True(t, p.Authorize("s3cret", "s3cret"))
	assert.False(t, p.Authorize("s3cret", "wrong"))
	assert.False(t, p.Authorize("s3cret", ""))
	assert.False(t, p.Authorize("s3cret", "s3cret "))

	// 两侧都为空串视为匹配：没设口令的帖子在闸门开启时等价于空口令
	assert.True(t, p.Authorize("", ""))
}

func TestPolicy_MergeSecret(t *testing.T) {
	p := Policy{Enabled: true}

	// 更新口令栏留空 => 保留原口令
	assert.Equal(t, "old", p.MergeSecret("old", ""))
	// 填写了新口令 => 整体替换
	assert.Equal(t, "new", p.MergeSecret("old", "new"))
	// 原本无口令、此次填写 => 设置口令
	assert.Equal(t, "new", p.MergeSecret("", "new"))
}
