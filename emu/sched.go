package emu

// Token identifies one scheduled callback. The zero Token means "none".
type Token uint64

// Scheduler abstracts a host periodic-callback facility so the driver does
// not depend on a specific scheduling primitive. Two lanes are consumed: a
// fixed-rate interval lane, whose callback fires every period until
// cancelled, and a display-refresh lane, whose callback fires once per
// refresh and must be rescheduled by its owner.
//
// Schedulers are not safe for concurrent use. Schedule and Cancel must be
// called from the host loop thread.
type Scheduler interface {
	Schedule(fn func()) Token
	Cancel(tok Token)
}
