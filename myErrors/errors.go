package myErrors

import "errors"

// 服务本地的哨兵错误。
// NotFound 与 Unauthorized 直接复用 go-common/commonerrors 中的定义，
// 这里只补充公共包没有覆盖的前置条件与权限类错误。

// ErrJoinRequestPending 表示同一 (用户, 社区) 对已存在一条待处理的入会申请。
// 重复提交在 API 边界被拒绝，对应 PreconditionFailed。
var ErrJoinRequestPending = errors.New("join request already pending for this user and community")

// ErrInvalidValidationStatus 表示审核操作收到了非法的裁定值。
// 审核只接受 validated / rejected 两种裁定，对应 PreconditionFailed。
var ErrInvalidValidationStatus = errors.New("validation status must be validated or rejected")

// ErrRequestAlreadyDecided 表示申请已被批准或驳回，pending 之外没有可用转移。
// 两类申请的状态机都是终态机：approved / rejected 一旦写入不再改变。
var ErrRequestAlreadyDecided = errors.New("request has already been approved or rejected")
