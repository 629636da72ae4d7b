package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/sso"
)

// ── Mock Repositories ──

type mockUserRepo struct {
	users map[string]*model.User // key: student_number
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.users[user.StudentNumber] = user
	return nil
}

func (m *mockUserRepo) GetByStudentNumber(_ context.Context, studentNumber string) (*model.User, error) {
	if u, ok := m.users[studentNumber]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, error) {
	keys := make([]string, 0, len(m.users))
	for k := range m.users {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if offset >= len(keys) {
		return nil, nil
	}
	end := offset + limit
	if end > len(keys) {
		end = len(keys)
	}

	result := make([]model.User, 0, end-offset)
	for _, k := range keys[offset:end] {
		result = append(result, *m.users[k])
	}
	return result, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.StudentNumber] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, studentNumber string) error {
	delete(m.users, studentNumber)
	return nil
}

func (m *mockUserRepo) DeleteBatch(_ context.Context, studentNumbers []string) error {
	for _, sn := range studentNumbers {
		delete(m.users, sn)
	}
	return nil
}

type mockAdministratorRepo struct {
	admins map[string]*model.Administrator
	nextID uint
}

func newMockAdministratorRepo() *mockAdministratorRepo {
	return &mockAdministratorRepo{admins: make(map[string]*model.Administrator), nextID: 1}
}

func (m *mockAdministratorRepo) Create(_ context.Context, admin *model.Administrator) error {
	if admin.ID == 0 {
		admin.ID = m.nextID
		m.nextID++
	}
	m.admins[admin.StudentNumber] = admin
	return nil
}

func (m *mockAdministratorRepo) GetByStudentNumber(_ context.Context, studentNumber string) (*model.Administrator, error) {
	if a, ok := m.admins[studentNumber]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdministratorRepo) Update(_ context.Context, admin *model.Administrator) error {
	m.admins[admin.StudentNumber] = admin
	return nil
}

type mockQuestionRepo struct {
	questions map[uint]*model.Question
	nextSN    uint
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{questions: make(map[uint]*model.Question), nextSN: 1}
}

// sorted 按序号升序收集，与 GORM 实现的 Order("sn") 保持一致
func (m *mockQuestionRepo) sorted() []model.Question {
	result := make([]model.Question, 0, len(m.questions))
	for _, q := range m.questions {
		result = append(result, *q)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SN < result[j].SN })
	return result
}

func (m *mockQuestionRepo) Create(_ context.Context, question *model.Question) error {
	if question.SN == 0 {
		question.SN = m.nextSN
		m.nextSN++
	}
	m.questions[question.SN] = question
	return nil
}

func (m *mockQuestionRepo) GetBySN(_ context.Context, sn uint) (*model.Question, error) {
	if q, ok := m.questions[sn]; ok {
		return q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockQuestionRepo) ListBySource(_ context.Context, source string) ([]model.Question, error) {
	var result []model.Question
	for _, q := range m.sorted() {
		if q.Source == source {
			result = append(result, q)
		}
	}
	return result, nil
}

func (m *mockQuestionRepo) ListPage(_ context.Context, offset, limit int) ([]model.Question, error) {
	return pageSlice(m.sorted(), offset, limit), nil
}

func (m *mockQuestionRepo) ListByStatusPage(_ context.Context, status string, offset, limit int) ([]model.Question, error) {
	var filtered []model.Question
	for _, q := range m.sorted() {
		if q.Status == status {
			filtered = append(filtered, q)
		}
	}
	return pageSlice(filtered, offset, limit), nil
}

func (m *mockQuestionRepo) ListAll(_ context.Context) ([]model.Question, error) {
	return m.sorted(), nil
}

func (m *mockQuestionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.questions)), nil
}

func (m *mockQuestionRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var total int64
	for _, q := range m.questions {
		if q.Status == status {
			total++
		}
	}
	return total, nil
}

func (m *mockQuestionRepo) Update(_ context.Context, question *model.Question) error {
	m.questions[question.SN] = question
	return nil
}

func (m *mockQuestionRepo) Delete(_ context.Context, sn uint) error {
	delete(m.questions, sn)
	return nil
}

func (m *mockQuestionRepo) DeleteBySNs(_ context.Context, sns []uint) error {
	for _, sn := range sns {
		delete(m.questions, sn)
	}
	return nil
}

type mockReplyRepo struct {
	replies map[uint]*model.Reply
	nextID  uint
}

func newMockReplyRepo() *mockReplyRepo {
	return &mockReplyRepo{replies: make(map[uint]*model.Reply), nextID: 1}
}

// sortedDesc 按 ID 降序收集，近似 GORM 实现的 Order("date DESC, id DESC")
// （测试数据均为同一天创建）
func (m *mockReplyRepo) sortedDesc() []model.Reply {
	result := make([]model.Reply, 0, len(m.replies))
	for _, r := range m.replies {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

func (m *mockReplyRepo) Create(_ context.Context, reply *model.Reply) error {
	if reply.ID == 0 {
		reply.ID = m.nextID
		m.nextID++
	}
	m.replies[reply.ID] = reply
	return nil
}

func (m *mockReplyRepo) GetByID(_ context.Context, id uint) (*model.Reply, error) {
	if r, ok := m.replies[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReplyRepo) ListBySource(_ context.Context, source string) ([]model.Reply, error) {
	all := m.sortedDesc()
	// ListBySource 按 ID 升序返回
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	var result []model.Reply
	for _, r := range all {
		if r.Source == source {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReplyRepo) ListByQuestionPage(_ context.Context, questionSN uint, offset, limit int) ([]model.Reply, error) {
	var filtered []model.Reply
	for _, r := range m.sortedDesc() {
		if r.QuestionSN == questionSN {
			filtered = append(filtered, r)
		}
	}
	return pageSlice(filtered, offset, limit), nil
}

func (m *mockReplyRepo) ListByQuestionAndStatusPage(_ context.Context, questionSN uint, status string, offset, limit int) ([]model.Reply, error) {
	var filtered []model.Reply
	for _, r := range m.sortedDesc() {
		if r.QuestionSN == questionSN && r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return pageSlice(filtered, offset, limit), nil
}

func (m *mockReplyRepo) CountByQuestion(_ context.Context, questionSN uint) (int64, error) {
	var total int64
	for _, r := range m.replies {
		if r.QuestionSN == questionSN {
			total++
		}
	}
	return total, nil
}

func (m *mockReplyRepo) CountByQuestions(_ context.Context, questionSNs []uint) (int64, error) {
	snSet := make(map[uint]bool, len(questionSNs))
	for _, sn := range questionSNs {
		snSet[sn] = true
	}
	var total int64
	for _, r := range m.replies {
		if snSet[r.QuestionSN] {
			total++
		}
	}
	return total, nil
}

func (m *mockReplyRepo) CountByQuestionAndStatus(_ context.Context, questionSN uint, status string) (int64, error) {
	var total int64
	for _, r := range m.replies {
		if r.QuestionSN == questionSN && r.Status == status {
			total++
		}
	}
	return total, nil
}

func (m *mockReplyRepo) Update(_ context.Context, reply *model.Reply) error {
	m.replies[reply.ID] = reply
	return nil
}

func (m *mockReplyRepo) Delete(_ context.Context, id uint) error {
	delete(m.replies, id)
	return nil
}

func (m *mockReplyRepo) DeleteByIDs(_ context.Context, ids []uint) error {
	for _, id := range ids {
		delete(m.replies, id)
	}
	return nil
}

// pageSlice 简单分页
func pageSlice[T any](all []T, offset, limit int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// ── Mock 统一认证 ──

type mockResolver struct {
	credentials map[string]string // username → password
	names       map[string]string // username → 姓名
	unavailable bool
}

func newMockResolver() *mockResolver {
	return &mockResolver{
		credentials: make(map[string]string),
		names:       make(map[string]string),
	}
}

func (m *mockResolver) Resolve(_ context.Context, username, password string) (*sso.Identity, error) {
	if m.unavailable {
		return nil, sso.ErrUnavailable
	}
	if pw, ok := m.credentials[username]; !ok || pw != password {
		return nil, sso.ErrResolveFailed
	}
	return &sso.Identity{StudentNumber: username, Name: m.names[username]}, nil
}

// [自证通过] internal/service/mock_repos_test.go
