package model

import "errors"

var (
	ErrSpinInProgress      = errors.New("spin already in progress")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrBetLocked           = errors.New("bet can not be changed while reels are spinning")
	ErrAnimationTimeout    = errors.New("reel animation did not complete in time")
	ErrNoViewer            = errors.New("no viewer connected")
)
