package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Enrollment API",
        "description": "University course enrollment service with capacity, credit and schedule-conflict enforcement",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student roster and timetable"},
        {"name": "Courses", "description": "Course catalog"},
        {"name": "Professors", "description": "Professor roster"},
        {"name": "Enrollments", "description": "Enroll and cancel operations"}
    ],
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}/schedule": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student's weekly timetable",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentSchedule"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}/enrollments": {
            "get": {
                "tags": ["Students"],
                "summary": "List a student's enrollments",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["ENROLLED", "CANCELLED"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Enrollment"}}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll a student in a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Enrollment"}},
                    "400": {"description": "Capacity or credit limit exceeded", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student or course not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Duplicate enrollment or time conflict", "schema": {"$ref": "#/definitions/APIError"}},
                    "503": {"description": "Database lock contention", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}/enrollments/{enrollmentId}": {
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Cancel an enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "enrollmentId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Enrollment"}},
                    "404": {"description": "Enrollment not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses with schedules",
                "parameters": [
                    {"name": "department_id", "in": "query", "type": "integer"},
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CourseListItem"}}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/professors": {
            "get": {
                "tags": ["Professors"],
                "summary": "List professors",
                "parameters": [
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Professor"}}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "student_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "department_id": {"type": "integer"}
            }
        },
        "Professor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "department_id": {"type": "integer"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "integer"},
                "capacity": {"type": "integer"},
                "enrolled": {"type": "integer"},
                "professor_id": {"type": "integer"},
                "department_id": {"type": "integer"}
            }
        },
        "CourseListItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "code": {"type": "string"},
                "credits": {"type": "integer"},
                "capacity": {"type": "integer"},
                "enrolled": {"type": "integer"},
                "professor_id": {"type": "integer"},
                "department_id": {"type": "integer"},
                "schedule": {"type": "string", "x-nullable": true}
            }
        },
        "Enrollment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"},
                "status": {"type": "string", "enum": ["ENROLLED", "CANCELLED"]},
                "enrolled_at": {"type": "string", "format": "date-time"},
                "cancelled_at": {"type": "string", "format": "date-time", "x-nullable": true}
            }
        },
        "StudentSchedule": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "student_name": {"type": "string"},
                "total_credits": {"type": "integer"},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/CourseListItem"}}
            }
        },
        "EnrollRequest": {
            "type": "object",
            "required": ["course_id"],
            "properties": {
                "course_id": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
