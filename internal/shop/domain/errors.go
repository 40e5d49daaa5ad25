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

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
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

//region OutOfStockError

type OutOfStockError struct {
	Msg string
}

func (e *OutOfStockError) Error() string {
	return e.Msg
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region InstructionNotFoundError

type InstructionNotFoundError struct {
	Msg string
}

func (e *InstructionNotFoundError) Error() string {
	return e.Msg
}

func (e *InstructionNotFoundError) Is(target error) bool {
	_, ok := target.(*InstructionNotFoundError)
	return ok
}

//endregion
