package review

import (
	"context"
	"testing"

	"roomrental/model"
	"roomrental/repository/backend"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createCalls int
	replyCalls  int
	createFn    func(ctx context.Context, token string, req model.CreateReviewReq) error
	listUserFn  func(ctx context.Context, token string, page, take int) (*model.ReviewPage, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Create(ctx context.Context, token string, req model.CreateReviewReq) error {
	m.createCalls++
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, token, req)
}
func (m *repoMock) Reply(ctx context.Context, token string, req model.ReplyReviewReq) error {
	m.replyCalls++
	return nil
}
func (m *repoMock) ListByProperty(ctx context.Context, token, propertyID string, page, take int) (*model.ReviewPage, error) {
	return &model.ReviewPage{}, nil
}
func (m *repoMock) ListByUser(ctx context.Context, token string, page, take int) (*model.ReviewPage, error) {
	if m.listUserFn == nil {
		return &model.ReviewPage{}, nil
	}
	return m.listUserFn(ctx, token, page, take)
}

func TestSubmit_EmptyCommentNoNetworkCall(t *testing.T) {
	m := &repoMock{}
	s := New(m)

	err := s.Submit(context.Background(), "tok", model.CreateReviewReq{
		TransactionUUID: "tx1",
		Rating:          5,
		Comment:         "   ",
	})
	require.Equal(t, ErrEmptyComment, Code(err))
	require.Zero(t, m.createCalls)
}

func TestSubmit_RatingOutOfRange(t *testing.T) {
	m := &repoMock{}
	s := New(m)

	for _, rating := range []int{0, -1, 6, 100} {
		err := s.Submit(context.Background(), "tok", model.CreateReviewReq{
			TransactionUUID: "tx1",
			Rating:          rating,
			Comment:         "Great stay",
		})
		require.Equal(t, ErrBadRating, Code(err), "rating %d", rating)
	}
	require.Zero(t, m.createCalls)
}

func TestSubmit_NoToken(t *testing.T) {
	m := &repoMock{}
	s := New(m)

	err := s.Submit(context.Background(), "", model.CreateReviewReq{
		TransactionUUID: "tx1",
		Rating:          5,
		Comment:         "Great stay",
	})
	require.Equal(t, backend.KindAuthMissing, backend.KindOf(err))
	require.Zero(t, m.createCalls)
}

func TestSubmit_ValidIssuesExactlyOnePost(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, token string, req model.CreateReviewReq) error {
			require.Equal(t, "tok", token)
			require.Equal(t, "tx1", req.TransactionUUID)
			require.Equal(t, 5, req.Rating)
			require.Equal(t, "Great stay", req.Comment)
			return nil
		},
	}
	s := New(m)

	err := s.Submit(context.Background(), "tok", model.CreateReviewReq{
		TransactionUUID: "tx1",
		Rating:          5,
		Comment:         "Great stay",
	})
	require.NoError(t, err)
	require.Equal(t, 1, m.createCalls)
}

func TestSubmit_BackendMessageBubbles(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, token string, req model.CreateReviewReq) error {
			return &backend.Error{Kind: backend.KindValidation, Message: "stay not completed yet", Status: 400}
		},
	}
	s := New(m)

	err := s.Submit(context.Background(), "tok", model.CreateReviewReq{
		TransactionUUID: "tx1",
		Rating:          4,
		Comment:         "ok",
	})
	require.EqualError(t, err, "stay not completed yet")
}

func TestReply_CommentOnlyValidation(t *testing.T) {
	m := &repoMock{}
	s := New(m)

	err := s.Reply(context.Background(), "tok", model.ReplyReviewReq{ReviewID: "r1", Comment: ""})
	require.Equal(t, ErrEmptyComment, Code(err))
	require.Zero(t, m.replyCalls)

	err = s.Reply(context.Background(), "tok", model.ReplyReviewReq{ReviewID: "r1", Comment: "thanks!"})
	require.NoError(t, err)
	require.Equal(t, 1, m.replyCalls)
}
