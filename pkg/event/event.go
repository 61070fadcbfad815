// Package event 同步事件分发
// 系统在更新过程中派发事件，场景订阅后播放音效或记录日志。
package event

// EventType 事件类型
type EventType string

// Event 事件
type Event struct {
	Type EventType
	Data interface{} // 事件数据，见 types.go 中的各个 XxxData
}

// Listener 事件订阅者
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher 事件分发器
// 只在单线程的更新循环中使用，不加锁
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher 创建分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe 订阅事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe 取消订阅
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch 同步通知所有订阅者
// nil 分发器上调用是安全的
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
