package utils

// Observer receives change notifications from a Subject.
type Observer[T any] interface {
	Update(T)
}

// Subject keeps an ordered registry of observers and fans out to them synchronously.
type Subject[T any] interface {
	Attach(Observer[T])
	Detach(Observer[T])
	Notify()
}
