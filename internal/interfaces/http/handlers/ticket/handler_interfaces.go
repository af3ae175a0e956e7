package ticket

import (
	"context"

	appdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
)

// Narrow executor interfaces so tests can swap use cases per operation.

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*appdto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type PatchTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.PatchTicketCommand) (*appdto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*appdto.TicketDTO, error)
}

type UpdateRemarksExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateRemarksCommand) (*appdto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*appdto.StatsDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*appdto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query usecases.ListCommentsQuery) ([]appdto.CommentDTO, error)
}
