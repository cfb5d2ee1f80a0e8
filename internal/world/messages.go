package world

type Msg interface{ isMsg() }

func (MsgInput) isMsg() {}

type MsgRestart struct{}

func (MsgRestart) isMsg() {}

type MsgTogglePause struct{}

func (MsgTogglePause) isMsg() {}
