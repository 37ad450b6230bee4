package employees

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEmployeeRepository struct {
	collection *mongo.Collection
}

func NewMongoEmployeeRepository(c *mongo.Collection) Repository {
	return &mongoEmployeeRepository{collection: c}
}

func (m *mongoEmployeeRepository) Store(e *Employee) error {
	_, err := m.collection.InsertOne(context.TODO(), e)
	return err
}

func (m *mongoEmployeeRepository) FindByID(id ID) (*Employee, error) {
	return m.findOneBy("_id", string(id))
}

func (m *mongoEmployeeRepository) FindByEmail(email string) (*Employee, error) {
	return m.findOneBy("email", email)
}

func (m *mongoEmployeeRepository) findOneBy(key string, val string) (*Employee, error) {
	var e Employee
	sr := m.collection.FindOne(context.TODO(), bson.M{key: val})

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (m *mongoEmployeeRepository) FindAll() ([]Employee, error) {
	return m.find(bson.M{})
}

func (m *mongoEmployeeRepository) FindPage(skip, limit int64) ([]Employee, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return m.find(bson.M{}, opts)
}

func (m *mongoEmployeeRepository) FindByDepartment(department string) ([]Employee, error) {
	return m.find(bson.M{"department": department})
}

func (m *mongoEmployeeRepository) FindBySalaryOrder(descending bool) ([]Employee, error) {
	order := 1
	if descending {
		order = -1
	}
	return m.find(bson.M{}, options.Find().SetSort(bson.D{{Key: "salary", Value: order}}))
}

//FindByFirstnameSubstring matches any occurrence, not just a prefix.
// The input is quoted so regex metacharacters are taken literally.
func (m *mongoEmployeeRepository) FindByFirstnameSubstring(q string) ([]Employee, error) {
	filter := bson.M{"firstname": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
	return m.find(filter)
}

func (m *mongoEmployeeRepository) Update(id ID, up EmployeeUpdate) (*Employee, error) {
	set := bson.M{}
	if up.Firstname != nil {
		set["firstname"] = *up.Firstname
	}
	if up.Lastname != nil {
		set["lastname"] = *up.Lastname
	}
	if up.Email != nil {
		set["email"] = *up.Email
	}
	if up.Department != nil {
		set["department"] = *up.Department
	}
	if up.Salary != nil {
		set["salary"] = *up.Salary
	}

	if len(set) == 0 {
		return m.FindByID(id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	sr := m.collection.FindOneAndUpdate(context.TODO(), bson.M{"_id": string(id)}, bson.M{"$set": set}, opts)

	var e Employee
	if err := sr.Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (m *mongoEmployeeRepository) Delete(id ID) (*Employee, error) {
	sr := m.collection.FindOneAndDelete(context.TODO(), bson.M{"_id": string(id)})

	var e Employee
	if err := sr.Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (m *mongoEmployeeRepository) Count() (int64, error) {
	return m.collection.CountDocuments(context.TODO(), bson.M{})
}

func (m *mongoEmployeeRepository) find(filter interface{}, opts ...*options.FindOptions) ([]Employee, error) {
	cur, err := m.collection.Find(context.TODO(), filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())

	employees := []Employee{}
	for cur.Next(context.TODO()) {
		var e Employee
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, cur.Err()
}
