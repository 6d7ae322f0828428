package mahjong

import (
	"time"
)

// Timer 对局定时器：到点才触发回调，由外部协作方按帧调用OnTick驱动。
// AI的"思考时间"只是这里的一个延迟，决策本身是同步函数。
type Timer struct {
	triggerTime time.Time
	callback    func()
}

func NewTimer() *Timer {
	return &Timer{}
}

// Schedule 安排定时任务，delay为零时下次OnTick立即触发
func (t *Timer) Schedule(delay time.Duration, callback func()) {
	t.triggerTime = time.Now().Add(delay)
	t.callback = callback
}

func (t *Timer) Cancel() {
	t.callback = nil
}

func (t *Timer) Pending() bool {
	return t.callback != nil
}

func (t *Timer) OnTick() {
	if t.callback == nil {
		return
	}
	if !time.Now().Before(t.triggerTime) {
		cb := t.callback
		t.callback = nil
		cb()
	}
}
