package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/form"
)

func filled() form.State {
	var s form.State
	for _, f := range form.Fields {
		s = s.Change(f, validRecord.Get(f))
	}
	return s
}

func TestState_TouchedGatesVisibility(t *testing.T) {
	t.Parallel()

	s := form.State{}.Change(form.Email, "bad")
	assert.True(t, s.Errors(form.Vanilla).Has(form.Email))
	assert.Empty(t, s.VisibleErrors(form.Vanilla))

	s = s.Blur(form.Email)
	visible := s.VisibleErrors(form.Vanilla)
	assert.Equal(t, []form.Field{form.Email}, visible.Fields())
	assert.Equal(t, form.KindFormat, visible[form.Email].Kind)

	// touched field revalidates on change
	s = s.Change(form.Email, "a@b.co")
	assert.Empty(t, s.VisibleErrors(form.Vanilla))
}

func TestState_MethodsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	s := form.State{}.Blur(form.Name)
	_ = s.Blur(form.Age)
	_ = s.Change(form.Name, "changed")
	assert.False(t, s.Touched.Has(form.Age))
	assert.Empty(t, s.Values.Name)
}

func TestState_ConfirmPasswordTracksPassword(t *testing.T) {
	t.Parallel()

	s := filled().Blur(form.ConfirmPassword)
	assert.Empty(t, s.VisibleErrors(form.Vanilla))

	s = s.Change(form.Password, "somethingelse")
	assert.Equal(t, form.KindMismatch, s.VisibleErrors(form.Vanilla)[form.ConfirmPassword].Kind)

	s = s.Change(form.ConfirmPassword, "somethingelse")
	assert.Empty(t, s.VisibleErrors(form.Vanilla))
}

func TestState_SubmitInvalid(t *testing.T) {
	t.Parallel()

	s := form.State{}.Change(form.Name, "A")
	next, errs, err := s.Submit(form.Vanilla)
	require.NoError(t, err)
	assert.Len(t, errs, 5)
	assert.Equal(t, form.PhaseEditing, next.CurrentPhase())
	assert.Nil(t, next.Pending)

	for _, f := range form.Fields {
		assert.True(t, next.Touched.Has(f), f)
	}
	assert.Len(t, next.VisibleErrors(form.Vanilla), 5)
}

func TestState_SubmitLifecycle(t *testing.T) {
	t.Parallel()

	s := filled()
	assert.True(t, s.IsValid(form.Vanilla))
	assert.True(t, s.IsDirty())

	next, errs, err := s.Submit(form.Vanilla)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.True(t, next.IsSubmitting())
	require.NotNil(t, next.Pending)
	assert.Equal(t, validRecord, *next.Pending)

	_, _, err = next.Submit(form.Vanilla)
	require.ErrorIs(t, err, form.ErrSubmitInProgress)

	done, err := next.Complete()
	require.NoError(t, err)
	assert.Equal(t, form.PhaseSubmitted, done.CurrentPhase())
	require.NotNil(t, done.Submitted)
	assert.Equal(t, validRecord, *done.Submitted)
	assert.False(t, done.IsDirty())
	assert.Empty(t, done.Touched)
	assert.Nil(t, done.Pending)

	edited := done.Change(form.Name, "Bo")
	assert.Equal(t, form.PhaseEditing, edited.CurrentPhase())
	assert.Equal(t, validRecord, *edited.Submitted)
}

func TestState_SubmitFromSubmitted(t *testing.T) {
	t.Parallel()

	next, _, err := filled().Submit(form.Vanilla)
	require.NoError(t, err)
	done, err := next.Complete()
	require.NoError(t, err)

	again := done.Sync(validRecord)
	assert.Equal(t, form.PhaseEditing, again.CurrentPhase())

	// a submitted form with valid values may be submitted directly
	direct := done
	direct.Values = validRecord
	resubmitted, _, err := direct.Submit(form.Vanilla)
	require.NoError(t, err)
	assert.True(t, resubmitted.IsSubmitting())
}

func TestState_StrictRefusesWeakPassword(t *testing.T) {
	t.Parallel()

	next, errs, err := filled().Submit(form.Strict)
	require.NoError(t, err)
	assert.False(t, next.IsSubmitting())
	assert.Equal(t, []form.Field{form.Password}, errs.Fields())
}

func TestState_CompleteWithoutSubmit(t *testing.T) {
	t.Parallel()

	s := filled()
	got, err := s.Complete()
	require.ErrorIs(t, err, form.ErrNotSubmitting)
	assert.Equal(t, s, got)

	// a reset during the wait drops the pending submission
	next, _, err := s.Submit(form.Vanilla)
	require.NoError(t, err)
	_, err = next.Reset().Complete()
	require.ErrorIs(t, err, form.ErrNotSubmitting)
}

func TestState_Reset(t *testing.T) {
	t.Parallel()

	s := filled().Blur(form.Name)
	next, _, err := s.Submit(form.Vanilla)
	require.NoError(t, err)

	r := next.Reset()
	assert.Equal(t, form.State{}, r)
	assert.Empty(t, r.Errors(form.Vanilla).Only(r.Touched))
	assert.Equal(t, form.PhaseEditing, r.CurrentPhase())
}

func TestState_Sync(t *testing.T) {
	t.Parallel()

	s := form.State{}.Blur(form.Password)
	s = s.Sync(form.Record{Password: "abc", ConfirmPassword: "abc"})
	assert.Equal(t, "abc", s.Values.Password)
	assert.True(t, s.Touched.Has(form.Password))
	assert.Equal(t, form.KindTooShort, s.VisibleErrors(form.Vanilla)[form.Password].Kind)
}

func TestState_Clone(t *testing.T) {
	t.Parallel()

	s, _, err := filled().Blur(form.Email).Submit(form.Vanilla)
	require.NoError(t, err)
	require.NotNil(t, s.Pending)

	c := s.Clone()
	assert.Equal(t, s, c)

	c.Touched[form.Email] = false
	c.Pending.Name = "changed"
	assert.True(t, s.Touched.Has(form.Email))
	assert.Equal(t, validRecord.Name, s.Pending.Name)
}
