package guard

import "crypto/subtle"

// Policy 是帖子口令闸门的纯决策逻辑，不依赖任何存储或传输层。
// 服务层在执行修改/删除前用它做授权判定，在执行更新时用它决定
// 口令字段的合并方式。
type Policy struct {
	// Enabled 是否启用口令闸门。关闭时所有修改/删除都被放行，
	// 对应不带口令的留言板形态。
	Enabled bool

	// HideMissing 闸门开启时，是否把"帖子不存在"与"口令不匹配"
	// 归并为同一种 Unauthorized 结果，从而不泄露帖子是否存在。
	HideMissing bool
}

// Authorize 判定调用方提供的口令能否通过闸门。
// - 闸门关闭时恒为 true。
// - 比较使用常数时间算法，避免逐字节短路带来的时序侧信道。
func (p Policy) Authorize(storedSecret, suppliedSecret string) bool {
	if !p.Enabled {
		return true
	}
	return secretsEqual(storedSecret, suppliedSecret)
}

// MergeSecret 决定更新操作后帖子应存储的口令：
// patch 为空串（调用方未填写口令字段）时保留原口令，非空时整体替换。
// 即空口令不会把已有口令清空——这是更新表单口令栏留空的约定语义。
func (p Policy) MergeSecret(storedSecret, patchSecret string) string {
	if patchSecret == "" {
		return storedSecret
	}
	return patchSecret
}

// secretsEqual 常数时间字符串比较。
// subtle.ConstantTimeCompare 在长度不同时会立即返回，
// 先单独比较长度并固定走一次全长比较，避免长度信息以外的泄露。
func secretsEqual(a, b string) bool {
	if len(a) != len(b) {
		// 长度不同必然不等；仍对 a 自身做一次比较以平衡耗时。
		subtle.ConstantTimeCompare([]byte(a), []byte(a))
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
