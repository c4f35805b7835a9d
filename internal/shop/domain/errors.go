package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientCreditsError

type InsufficientCreditsError struct {
	Msg string
}

func (e *InsufficientCreditsError) Error() string {
	return e.Msg
}

func (e *InsufficientCreditsError) Is(target error) bool {
	_, ok := target.(*InsufficientCreditsError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region ItemNotFoundError

type ItemNotFoundError struct {
	Msg string
}

func (e *ItemNotFoundError) Error() string {
	return e.Msg
}

func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

//endregion

//region StoreError

// StoreError classifies transport and integrity failures coming from the data
// layer. Wrapped so callers can map every such failure to a 5xx response
// without inspecting driver errors.
type StoreError struct {
	Msg string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}

	return e.Msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	_, ok := target.(*StoreError)
	return ok
}

//endregion
