package enums

import "fmt"

// ValidationStatus 表示 AI 帖子的人工审核状态。
// - 人类发帖在创建时即为 Validated；AI 帖子创建时为 Pending，由审核人裁定。
// - 审核状态与发布状态 (Post.Published) 是两个独立开关：
//   审核拒绝的帖子不会发布，除非管理员显式调用发布操作，这是沿用既有系统的策略。
type ValidationStatus int

const (
	// ValidationPending 待审核
	ValidationPending ValidationStatus = 0
	// Validated 审核通过
	Validated ValidationStatus = 1
	// ValidationRejected 审核拒绝
	ValidationRejected ValidationStatus = 2
)

// IsTerminal 返回该状态是否为审核裁定结果。
func (s ValidationStatus) IsTerminal() bool {
	return s == Validated || s == ValidationRejected
}

// IsValidVerdict 返回该状态是否可以作为 validate 操作的入参。
// 审核操作只接受 Validated / ValidationRejected 两种裁定。
func (s ValidationStatus) IsValidVerdict() bool {
	return s == Validated || s == ValidationRejected
}

func (s ValidationStatus) String() string {
	switch s {
	case ValidationPending:
		return "pending"
	case Validated:
		return "validated"
	case ValidationRejected:
		return "rejected"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}
