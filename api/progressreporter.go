package api

import "github.com/google/uuid"

type ProgressReporter interface {
	Update(name string, current int, total int)
	Error(message string, err error)
}

type SenderProgressReporter struct {
	jobId  uuid.UUID
	sender Sender

	ProgressReporter
}

func NewSenderProgressReporter(sender Sender) ProgressReporter {
	return SenderProgressReporter{
		jobId:  uuid.New(),
		sender: sender,
	}
}

func (s SenderProgressReporter) Update(name string, current int, total int) {
	s.sender.SendCommandToTopic(ImportStatusUpdated, &UpdateProgressCommand{
		JobId:   s.jobId,
		Name:    name,
		Current: current,
		Total:   total,
	})
}

func (s SenderProgressReporter) Error(message string, err error) {
	s.sender.SendError(message, err)
}
